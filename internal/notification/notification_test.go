package notification

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/logging"
)

func TestLoggerNotifierWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewLoggerNotifier(logging.NewWithWriter(&buf, "info"))

	if err := n.Send(context.Background(), Message{Kind: KindTaskCompleted, UserID: "u1", TaskID: "t1", Body: "done"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"kind":"task_completed"`, `"user_id":"u1"`, `"task_id":"t1"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestNilLoggerNotifier(t *testing.T) {
	var n *LoggerNotifier
	if err := n.Send(context.Background(), Message{}); err != nil {
		t.Fatalf("nil notifier should be a no-op, got %v", err)
	}
}
