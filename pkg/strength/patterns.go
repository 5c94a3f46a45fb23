package strength

// Static pattern tables used by the scorer and the personal data checker.
// These are deliberately small embedded samples, not a breach database.

// LeetSubstitutions maps letters to the digits/symbols commonly used to
// disguise them. Shared with the password strengthener.
var LeetSubstitutions = map[rune]rune{
	'a': '4',
	'e': '3',
	'i': '1',
	'o': '0',
	's': '5',
	't': '7',
	'b': '8',
	'g': '9',
	'l': '1',
}

// SpecialCharacters is the curated set used when strengthening passwords.
var SpecialCharacters = []rune{'!', '@', '#', '$', '%', '&', '*', '?', '+', '=', '^', '~'}

// reverseLeet undoes the most common substitutions so "p4ssw0rd" is caught
// by the same dictionary entry as "password". Single pass, first mapping wins.
var reverseLeet = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'$': 's',
	'@': 'a',
}

// trivialPasswords are flat-out rejected values. Exact match only.
var trivialPasswords = []string{
	"password",
	"admin",
	"123456",
	"qwerty",
}

// keyboardWalks are rows of adjacent keys people type left to right (or the
// number row backwards).
var keyboardWalks = []string{
	"qwerty",
	"asdfg",
	"zxcvb",
	"12345",
	"09876",
}

// commonPasswords feeds the scorer substring penalty. Checked against the
// password and its leet-normalized form.
var commonPasswords = []string{
	"password",
	"passwort",
	"passw0rd",
	"123456",
	"12345678",
	"123456789",
	"qwerty",
	"abc123",
	"letmein",
	"iloveyou",
	"welcome",
	"monkey",
	"dragon",
	"sunshine",
	"princess",
	"football",
	"baseball",
	"superman",
	"batman",
	"master",
	"shadow",
	"michael",
	"summer",
	"winter",
	"secret",
	"admin",
	"login",
	"freedom",
	"whatever",
	"trustno1",
}

// leakedPasswords is a static sample standing in for the usual breached
// password dumps. The checker reports the first matching entry only.
var leakedPasswords = []string{
	"123456",
	"password",
	"12345678",
	"qwerty",
	"123456789",
	"12345",
	"1234",
	"111111",
	"1234567",
	"dragon",
	"123123",
	"baseball",
	"abc123",
	"football",
	"monkey",
	"letmein",
	"696969",
	"shadow",
	"master",
	"666666",
	"qwertyuiop",
	"123321",
	"mustang",
	"1234567890",
	"michael",
	"654321",
	"superman",
	"1qaz2wsx",
	"7777777",
	"fuckyou",
	"121212",
	"000000",
	"qazwsx",
	"123qwe",
	"killer",
	"trustno1",
	"jordan",
	"jennifer",
	"zxcvbnm",
	"asdfgh",
	"hunter",
	"buster",
	"soccer",
}

func normalizeLeet(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if sub, ok := reverseLeet[r]; ok {
			out = append(out, sub)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
