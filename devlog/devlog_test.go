package devlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/eddy/store"
	"github.com/iw2rmb/eddy/textfield"
)

func TestWrapReducer_PreservesSemantics(t *testing.T) {
	log := zerolog.New(&bytes.Buffer{})
	st := store.New(WrapReducer(log, textfield.Reduce), "")

	st.Dispatch(textfield.InsertCharacter("a"))
	st.Dispatch(textfield.InsertCharacter("b"))
	st.Dispatch(textfield.RemoveCharacter())

	if got := st.State(); got != "a" {
		t.Fatalf("state through wrapped reducer: got %q, want %q", got, "a")
	}
}

func TestWrapReducer_LogsTagAndChange(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	reduce := WrapReducer(log, textfield.Reduce)

	reduce("", textfield.InsertCharacter("a"))
	line := buf.String()
	if !strings.Contains(line, `"action":"CHARACTER_TYPED"`) {
		t.Fatalf("log line missing action tag: %s", line)
	}
	if !strings.Contains(line, `"changed":true`) {
		t.Fatalf("log line missing changed flag: %s", line)
	}
}

func TestWrapReducer_UntaggedActionLogsType(t *testing.T) {
	type mystery struct{}

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	reduce := WrapReducer(log, textfield.Reduce)

	if got := reduce("keep", mystery{}); got != "keep" {
		t.Fatalf("unknown action changed state: got %q", got)
	}
	line := buf.String()
	if !strings.Contains(line, "mystery") {
		t.Fatalf("log line missing Go type for untagged action: %s", line)
	}
	if !strings.Contains(line, `"changed":false`) {
		t.Fatalf("log line missing changed=false: %s", line)
	}
}
