package linkheader

import "testing"

func TestLinkString(t *testing.T) {
	tests := map[string]struct {
		link Link
		want string
	}{
		"zero": {
			want: "<>",
		},
		"uri only": {
			link: NewLink("/a", nil),
			want: "</a>",
		},
		"known order": {
			link: NewLink("/a", map[string]string{"type": "t", "media": "m", "hreflang": "h", "title": "ti", "rel": "r"}),
			want: `</a>; rel="r"; title="ti"; hreflang="h"; media="m"; type="t"`,
		},
		"extras sorted after known": {
			link: NewLink("/a", map[string]string{"b": "2", "a": "1", "rel": "next"}),
			want: `</a>; rel="next"; a="1"; b="2"`,
		},
		"empty value": {
			link: NewLink("/a", map[string]string{"crossorigin": ""}),
			want: `</a>; crossorigin=""`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			have := tc.link.String()
			if have != tc.want {
				t.Errorf("got %q, want %q", have, tc.want)
			}
			if again := tc.link.String(); again != have {
				t.Errorf("second render got %q, want %q", again, have)
			}
		})
	}
}

func TestLinkImmutable(t *testing.T) {
	attrs := map[string]string{"rel": "next"}
	l := NewLink("/a", attrs)

	attrs["rel"] = "changed"
	if l.Rel() != "next" {
		t.Errorf("link changed through the constructor argument: %s", l)
	}

	l.Attributes()["rel"] = "changed"
	if l.Rel() != "next" {
		t.Errorf("link changed through Attributes(): %s", l)
	}
}

func TestLinkEqual(t *testing.T) {
	tests := map[string]struct {
		a    Link
		b    Link
		want bool
	}{
		"same":            {a: NewLink("/", map[string]string{"rel": "next"}), b: NewLink("/", map[string]string{"rel": "next"}), want: true},
		"nil and empty":   {a: NewLink("/", nil), b: NewLink("/", map[string]string{}), want: true},
		"different uri":   {a: NewLink("/a", nil), b: NewLink("/b", nil)},
		"different value": {a: NewLink("/", map[string]string{"rel": "next"}), b: NewLink("/", map[string]string{"rel": "prev"})},
		"extra attribute": {a: NewLink("/", map[string]string{"rel": "next"}), b: NewLink("/", map[string]string{"rel": "next", "title": "x"})},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if have := tc.a.Equal(tc.b); have != tc.want {
				t.Errorf("got %t, want %t", have, tc.want)
			}
			if have := tc.b.Equal(tc.a); have != tc.want {
				t.Errorf("reversed: got %t, want %t", have, tc.want)
			}
		})
	}
}

func TestGetField(t *testing.T) {
	l := NewLink("/a", map[string]string{"rel": "next", "title": "t", "hreflang": "ja", "media": "print", "type": "text/html", "anchor": "#x", "uri": "shadowed"})

	tests := map[string]struct {
		want   string
		wantOK bool
	}{
		FieldURI:      {want: "/a", wantOK: true},
		FieldRel:      {want: "next", wantOK: true},
		FieldTitle:    {want: "t", wantOK: true},
		FieldHreflang: {want: "ja", wantOK: true},
		FieldMedia:    {want: "print", wantOK: true},
		FieldType:     {want: "text/html", wantOK: true},
		"anchor":      {want: "#x", wantOK: true},
		"rev":         {},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			have, ok := GetField(l, name)
			if have != tc.want || ok != tc.wantOK {
				t.Errorf("got %q, %t, want %q, %t", have, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestLinkShorthands(t *testing.T) {
	l := NewLink("/a", map[string]string{"rel": "r", "title": "ti", "hreflang": "h", "media": "m", "type": "t"})
	have := []string{l.Rel(), l.Title(), l.Hreflang(), l.Media(), l.Type()}
	want := []string{"r", "ti", "h", "m", "t"}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("got %q, want %q", have[i], want[i])
		}
	}
}

func TestGetFieldMissing(t *testing.T) {
	l := NewLink("/a", map[string]string{"anchor": "#x"})
	for _, name := range []string{FieldRel, FieldTitle, FieldHreflang, FieldMedia, FieldType, "rev"} {
		if have, ok := GetField(l, name); ok || have != "" {
			t.Errorf("%s: got %q, %t, want empty and false", name, have, ok)
		}
	}
	if have, ok := GetField(NewLink("", nil), FieldURI); !ok || have != "" {
		t.Errorf("uri: got %q, %t, want empty and true", have, ok)
	}
}
