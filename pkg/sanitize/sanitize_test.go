package sanitize

import "testing"

func TestHTMLKeepsInlineAllowList(t *testing.T) {
	in := "Hello <b>bold</b> <strong>strong</strong> <i>italic</i> <em>em</em> <u>under</u><br>next"
	if got := HTML(in); got != in {
		t.Errorf("allow-list content altered:\n got %q\nwant %q", got, in)
	}
}

func TestHTMLStripsScripts(t *testing.T) {
	got := HTML(`before<script>alert("x")</script>after`)
	want := "beforeafter"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHTMLStripsBlockTagsKeepsText(t *testing.T) {
	got := HTML("<p>para</p><div>block</div><h1>head</h1>")
	want := "parablockhead"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHTMLStripsLinksAndAttributes(t *testing.T) {
	if got := HTML(`<a href="https://evil.example">link</a>`); got != "link" {
		t.Errorf("anchor survived: %q", got)
	}
	if got := HTML(`<b onclick="alert(1)">x</b>`); got != "<b>x</b>" {
		t.Errorf("attribute survived: %q", got)
	}
	if got := HTML(`<img src="x" onerror="alert(1)">`); got != "" {
		t.Errorf("img survived: %q", got)
	}
}

func TestHTMLPlainTextUntouched(t *testing.T) {
	in := "no markup at all"
	if got := HTML(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}
