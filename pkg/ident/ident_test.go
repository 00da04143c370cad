package ident

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var idPattern = regexp.MustCompile(`^(msg|notif)-[1-9][0-9]{0,5}$`)

func TestNewID_Format(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 1000; i++ {
		for _, prefix := range []string{MessagePrefix, NotificationPrefix} {
			id := g.NewID(prefix)
			if !idPattern.MatchString(id) {
				t.Fatalf("id %q does not match %s", id, idPattern)
			}
			if !strings.HasPrefix(id, prefix+"-") {
				t.Fatalf("id %q missing prefix %q", id, prefix)
			}
		}
	}
}

func TestNewID_Range(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 1000; i++ {
		id := g.NewID(MessagePrefix)
		n, err := strconv.Atoi(strings.TrimPrefix(id, "msg-"))
		if err != nil {
			t.Fatalf("non-numeric suffix in %q: %v", id, err)
		}
		if n < 1 || n > 100000 {
			t.Fatalf("suffix %d out of range [1, 100000]", n)
		}
	}
}
