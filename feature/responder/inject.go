package responder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HeadClose is the marker the configuration block is inserted before.
const HeadClose = "</head>"

const scriptFormat = `
<script>
// Environment variables injected by server
window.VITE_FIREBASE_API_KEY = %s;
window.VITE_FIREBASE_PROJECT_ID = %s;
window.VITE_FIREBASE_APP_ID = %s;
</script>
`

// BuildScript renders the configuration block for v.
// Values become double-quoted string literals; quotes, backslashes, control
// characters and <, >, & are escaped so a value cannot close the string or
// the script element.
func BuildScript(v Values) string {
	return fmt.Sprintf(scriptFormat, quote(v.APIKey), quote(v.ProjectID), quote(v.AppID))
}

func quote(s string) string {
	// Marshalling a string cannot fail.
	b, _ := json.Marshal(s)
	return string(b)
}

// Inject inserts block immediately before the first HeadClose in content.
// Without a marker the content is returned as is and ok is false.
func Inject(content, block []byte) (out []byte, ok bool) {
	i := bytes.Index(content, []byte(HeadClose))
	if i < 0 {
		return content, false
	}

	out = make([]byte, 0, len(content)+len(block))
	out = append(out, content[:i]...)
	out = append(out, block...)
	out = append(out, content[i:]...)
	return out, true
}
