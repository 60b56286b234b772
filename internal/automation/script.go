package automation

import (
	"fmt"
	"strings"
	"time"

	"riotswch/internal/account"
	"riotswch/internal/config"
)

// PowerShell treats the typographic quotes as quote characters too, so they
// get the same escaping as their ASCII forms.
var (
	doubleQuotedEscaper = strings.NewReplacer(
		"`", "``",
		`"`, "`\"",
		"$", "`$",
		"\u201c", "`\u201c",
		"\u201d", "`\u201d",
		"\u201e", "`\u201e",
	)
	singleQuotedEscaper = strings.NewReplacer(
		"'", "''",
		"\u2018", "\u2018\u2018",
		"\u2019", "\u2019\u2019",
		"\u201a", "\u201a\u201a",
		"\u201b", "\u201b\u201b",
	)
)

// EscapeDoubleQuoted makes s safe inside a PowerShell "..." string: no
// variable expansion, no subexpressions, no early end of the literal.
func EscapeDoubleQuoted(s string) string {
	return doubleQuotedEscaper.Replace(s)
}

// EscapeSingleQuoted makes s safe inside a PowerShell '...' string.
func EscapeSingleQuoted(s string) string {
	return singleQuotedEscaper.Replace(s)
}

// BuildScript renders the login script. The script waits for the client,
// focuses its window and pastes both fields through the clipboard. If the
// window cannot be activated it exits quietly rather than typing into
// whatever else has focus.
func BuildScript(creds account.Credentials, timing config.Automation) string {
	var b strings.Builder
	sleep := func(d config.Duration) {
		fmt.Fprintf(&b, "Start-Sleep -Milliseconds %d\n", millis(d.Std()))
	}

	sleep(timing.StartupDelay)
	b.WriteString("$wshell = New-Object -ComObject WScript.Shell\n")
	fmt.Fprintf(&b, "if (-not $wshell.AppActivate('%s')) { exit 0 }\n", EscapeSingleQuoted(timing.WindowTitle))
	sleep(timing.FocusDelay)
	fmt.Fprintf(&b, "Set-Clipboard -Value \"%s\"\n", EscapeDoubleQuoted(creds.Username))
	b.WriteString("$wshell.SendKeys('^v')\n")
	sleep(timing.KeyDelay)
	b.WriteString("$wshell.SendKeys('{TAB}')\n")
	sleep(timing.KeyDelay)
	fmt.Fprintf(&b, "Set-Clipboard -Value \"%s\"\n", EscapeDoubleQuoted(creds.Password))
	b.WriteString("$wshell.SendKeys('^v')\n")
	sleep(timing.KeyDelay)
	b.WriteString("$wshell.SendKeys('{ENTER}')")
	return b.String()
}

func millis(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}
