// Package drill holds the five conditional-logic drills.
//
// Every drill is a single predicate mapped to one of two fixed messages,
// written twice:
//
//   - ...IfElse      uses a branching statement (if { } else { }).
//   - ...Conditional uses a conditional expression. Go has no ?: operator,
//     so the expression form is lo.Ternary(cond, whenTrue, whenFalse).
//
// Both forms must pick the same message for every possible value. The
// boundaries (18, 0, 8) are where they could drift, so the comparison
// operators are kept exactly: strict > for age, strict < for the sign,
// >= for the password length.
//
// Password length counts Unicode code points, not UTF-16 code units, so a
// character outside the Basic Multilingual Plane counts once: "123456😀"
// is 7 long here and reads as too short.
package drill

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// Messages printed by the drills.
const (
	MsgEligible    = "You are eligible to vote"
	MsgNotEligible = "You are not eligible to vote"

	MsgNegative = "Negative"
	MsgPositive = "Positive"

	MsgStrongPassword   = "Strong password"
	MsgPasswordTooShort = "Password too short"

	MsgEven = "Even"
	MsgOdd  = "Odd"

	MsgWelcomeBack = "Welcome back"
	MsgPleaseLogIn = "Please log in"
)

const (
	// VotingAge is exclusive: exactly 18 is not eligible.
	VotingAge = 18

	// MinPasswordLength is inclusive: exactly 8 characters is strong.
	MinPasswordLength = 8
)

// ── (1) Age check ────────────────────────────────────────────────────────

// AgeIfElse reports voting eligibility with an if/else statement.
func AgeIfElse(age int) string {
	var msg string
	if age > VotingAge {
		msg = MsgEligible
	} else {
		msg = MsgNotEligible
	}
	return msg
}

// AgeConditional reports voting eligibility with a conditional expression.
func AgeConditional(age int) string {
	return lo.Ternary(age > VotingAge, MsgEligible, MsgNotEligible)
}

// ── (2) Number sign ──────────────────────────────────────────────────────
// Zero is reported as "Positive" because the check is strictly < 0.

// SignIfElse reports the sign of number with an if/else statement.
func SignIfElse(number int) string {
	var msg string
	if number < 0 {
		msg = MsgNegative
	} else {
		msg = MsgPositive
	}
	return msg
}

// SignConditional reports the sign of number with a conditional expression.
func SignConditional(number int) string {
	return lo.Ternary(number < 0, MsgNegative, MsgPositive)
}

// ── (3) Password length ──────────────────────────────────────────────────
// Length is counted in characters, not bytes: "pässwörd" is 8 long.

// PasswordIfElse grades the password length with an if/else statement.
func PasswordIfElse(password string) string {
	var msg string
	if utf8.RuneCountInString(password) >= MinPasswordLength {
		msg = MsgStrongPassword
	} else {
		msg = MsgPasswordTooShort
	}
	return msg
}

// PasswordConditional grades the password length with a conditional expression.
func PasswordConditional(password string) string {
	return lo.Ternary(utf8.RuneCountInString(password) >= MinPasswordLength,
		MsgStrongPassword, MsgPasswordTooShort)
}

// ── (4) Even or odd ──────────────────────────────────────────────────────
// Go's % keeps the sign of the dividend (-3 % 2 == -1), so comparing
// against 0 is the only test that is correct for negative numbers too.

// ParityIfElse reports whether num is even with an if/else statement.
func ParityIfElse(num int) string {
	var msg string
	if num%2 == 0 {
		msg = MsgEven
	} else {
		msg = MsgOdd
	}
	return msg
}

// ParityConditional reports whether num is even with a conditional expression.
func ParityConditional(num int) string {
	return lo.Ternary(num%2 == 0, MsgEven, MsgOdd)
}

// ── (5) Login status ─────────────────────────────────────────────────────

// LoginIfElse greets a logged-in user with an if/else statement.
func LoginIfElse(isLoggedIn bool) string {
	var msg string
	if isLoggedIn {
		msg = MsgWelcomeBack
	} else {
		msg = MsgPleaseLogIn
	}
	return msg
}

// LoginConditional greets a logged-in user with a conditional expression.
func LoginConditional(isLoggedIn bool) string {
	return lo.Ternary(isLoggedIn, MsgWelcomeBack, MsgPleaseLogIn)
}
