package version

import "testing"

func TestInfo(t *testing.T) {
	bi := Info()
	if bi.Service != "leetgen-api" || bi.Version == "" || bi.Commit == "" || bi.Date == "" {
		t.Fatalf("Info() = %+v", bi)
	}
	if got := For("leetgen"); got.Service != "leetgen" || got.Version != bi.Version {
		t.Fatalf("For(leetgen) = %+v", got)
	}
}
