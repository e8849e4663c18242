package pagination

import (
	"net/url"
	"reflect"
	"testing"
)

const (
	giteaFirstPage  = `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=2&state=all>; rel="next",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=20&state=all>; rel="last"`
	giteaMiddlePage = `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=3&state=all>; rel="next",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=20&state=all>; rel="last",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=1&state=all>; rel="first",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=1&state=all>; rel="prev"`
	giteaLastPage   = `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=1&state=all>; rel="first",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=19&state=all>; rel="prev"`
)

func TestNextPage(t *testing.T) {
	tests := map[string]struct {
		linkHdr string
		want    int
	}{
		"first page":  {linkHdr: giteaFirstPage, want: 2},
		"middle page": {linkHdr: giteaMiddlePage, want: 3},
		"last page":   {linkHdr: giteaLastPage, want: 0},
		"empty":       {linkHdr: "", want: 0},
		"malformed":   {linkHdr: `<; rel="next"`, want: 0},
		"invalid url": {linkHdr: `<:::gitea.com/api/v1/repos?page=2>; rel="next"`, want: 0},
		"no page":     {linkHdr: `</v2/library/alpine/tags/list?last=2.7&n=2>; rel="next"`, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if have := NextPage(tc.linkHdr); have != tc.want {
				t.Errorf("got %d, want %d", have, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		linkHdr string
		param   string
		want    Pages
	}{
		"first page":  {linkHdr: giteaFirstPage, param: DefaultParam, want: Pages{Next: 2, Last: 20}},
		"middle page": {linkHdr: giteaMiddlePage, param: DefaultParam, want: Pages{First: 1, Prev: 1, Next: 3, Last: 20}},
		"last page":   {linkHdr: giteaLastPage, param: DefaultParam, want: Pages{First: 1, Prev: 19}},
		"previous": {
			linkHdr: `</?page=1>; rel="previous", </?page=3>; rel="next"`,
			param:   DefaultParam,
			want:    Pages{Prev: 1, Next: 3},
		},
		"other param": {
			linkHdr: `</items?p=4&page=9>; rel="next"`,
			param:   "p",
			want:    Pages{Next: 4},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if have := Parse(tc.linkHdr, tc.param); !reflect.DeepEqual(have, tc.want) {
				t.Errorf("got %#v, want %#v", have, tc.want)
			}
		})
	}
}

func TestNextURL(t *testing.T) {
	tests := map[string]struct {
		linkHdr string
		want    string
		wantOK  bool
	}{
		"docker registry": {
			linkHdr: `</v2/library/alpine/tags/list?last=2.7&n=2>; rel="next"`,
			want:    "/v2/library/alpine/tags/list?last=2.7&n=2",
			wantOK:  true,
		},
		"gitea": {
			linkHdr: giteaFirstPage,
			want:    "https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=2&state=all",
			wantOK:  true,
		},
		"no next":     {linkHdr: giteaLastPage},
		"no rel":      {linkHdr: `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=2&state=all>`},
		"invalid url": {linkHdr: `<:::gitea.com/api/v1/repos?page=2>; rel="next"`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			have, ok := NextURL(tc.linkHdr)
			if have != tc.want || ok != tc.wantOK {
				t.Errorf("got %q, %t, want %q, %t", have, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		page int
		last int
		want Pages
	}{
		"first":  {page: 1, last: 3, want: Pages{First: 1, Next: 2, Last: 3}},
		"middle": {page: 2, last: 3, want: Pages{First: 1, Prev: 1, Next: 3, Last: 3}},
		"last":   {page: 3, last: 3, want: Pages{First: 1, Prev: 2, Last: 3}},
		"single": {page: 1, last: 1, want: Pages{First: 1, Last: 1}},
		"empty":  {page: 1, last: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if have := New(tc.page, tc.last); !reflect.DeepEqual(have, tc.want) {
				t.Errorf("got %#v, want %#v", have, tc.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	base, err := url.Parse("https://example.com/items?state=all")
	if err != nil {
		t.Fatal(err)
	}

	have := Header(base, DefaultParam, New(2, 3))
	want := `<https://example.com/items?page=1&state=all>; rel="first", ` +
		`<https://example.com/items?page=1&state=all>; rel="prev", ` +
		`<https://example.com/items?page=3&state=all>; rel="next", ` +
		`<https://example.com/items?page=3&state=all>; rel="last"`
	if have != want {
		t.Errorf("got %q, want %q", have, want)
	}

	if pages := Parse(have, DefaultParam); !reflect.DeepEqual(pages, New(2, 3)) {
		t.Errorf("got %#v, want %#v", pages, New(2, 3))
	}
	if base.RawQuery != "state=all" {
		t.Errorf("base URL was modified: %s", base)
	}

	if have := Header(base, DefaultParam, Pages{}); have != "" {
		t.Errorf("got %q, want empty string", have)
	}
}
