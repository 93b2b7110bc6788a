package html

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a<>&\"'\x80", "a&lt;&gt;&amp;&quot;&#039;�"},
		{"a\xE2\x82b", "a�b"},
		{"\xF0\x9F\x98<", "�&lt;"},
		{"\xE0\x80\x80", "���"},
		{"\xED\xA0\x80", "���"},
		{"\xC3\xC3\xA9", "�é"},
		{"\xFF\xFE", "��"},
		{"Sam & Dark", "Sam &amp; Dark"},
		{"", ""},
		{"plain", "plain"},
		{"быстроном", "быстроном"},
		{"&amp;", "&amp;amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeKeepEntities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"value&lt;&gt;", "value&lt;&gt;"},
		{"a & b", "a &amp; b"},
		{"&#39;&#x1F;", "&#39;&#x1F;"},
		{"&#;&#x;", "&amp;#;&amp;#x;"},
		{"&nbsp", "&amp;nbsp"},
		{"<&copy;>", "&lt;&copy;&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EncodeKeepEntities(tt.in); got != tt.want {
				t.Errorf("EncodeKeepEntities(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	if got := Decode("a&lt;&gt;&amp;&quot;&#039;"); got != "a<>&\"'" {
		t.Errorf("Decode = %q", got)
	}
	if got := Decode("&amp;lt;"); got != "&lt;" {
		t.Errorf("Decode(&amp;lt;) = %q", got)
	}

	for _, s := range []string{"", "a<b>&c", `"quoted" 'single'`, "ünïcödé & <tags>"} {
		if got := Decode(Encode(s)); got != s {
			t.Errorf("Decode(Encode(%q)) = %q", s, got)
		}
	}
}
