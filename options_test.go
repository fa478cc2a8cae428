package fontatlas

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.charset.Name() != "ISO-8859-1" {
		t.Errorf("default charset = %q", o.charset.Name())
	}
	if o.backend != "" {
		t.Errorf("default backend = %q, want empty", o.backend)
	}
}

func TestOptions_LastWins(t *testing.T) {
	cs, err := LookupCharset("windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	o := applyOptions([]Option{
		WithBackend("ximage"),
		WithCharset(cs),
		WithBackend("gotext"),
	})
	if o.backend != "gotext" {
		t.Errorf("backend = %q, want gotext", o.backend)
	}
	if o.charset.Name() != "windows-1252" {
		t.Errorf("charset = %q, want windows-1252", o.charset.Name())
	}
}
