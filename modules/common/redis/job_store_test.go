package redis

import "testing"

func TestKeys(t *testing.T) {
	if got := JobKey("abc"); got != "mockup:job:abc" {
		t.Fatalf("JobKey = %q", got)
	}
	if got := CancelKey("abc"); got != "mockup:job-cancel:abc" {
		t.Fatalf("CancelKey = %q", got)
	}
	if JobKey("abc") == CancelKey("abc") {
		t.Fatalf("job and cancel keys must differ")
	}
}
