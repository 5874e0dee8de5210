package web

import (
	"strings"
	"testing"

	"github.com/tzelal/go-htmx-starter/internal/domain"
)

func TestTemplatesParseAndRender(t *testing.T) {
	tpl := Templates()

	for _, name := range []string{
		"index.html", "item_list.html", "item_detail.html",
		"item_form.html", "swap.html", "form_result.html",
	} {
		if tpl.Lookup(name) == nil {
			t.Errorf("template %q not found", name)
		}
	}

	var sb strings.Builder
	err := tpl.ExecuteTemplate(&sb, "item_list.html", map[string]any{
		"Items":    []domain.Item{{ID: 1, Name: "Widget", Price: 9.5}},
		"BasePath": "/api/v1",
	})
	if err != nil {
		t.Fatalf("render item_list: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Widget") || !strings.Contains(out, "/api/v1/htmx/items/1") {
		t.Fatalf("rendered list:\n%s", out)
	}
}

func TestItemListEscapesNames(t *testing.T) {
	var sb strings.Builder
	err := Templates().ExecuteTemplate(&sb, "item_list.html", map[string]any{
		"Items":    []domain.Item{{ID: 1, Name: "<script>x</script>", Price: 1}},
		"BasePath": "",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(sb.String(), "<script>x</script>") {
		t.Fatal("item name rendered unescaped")
	}
}

func TestStaticFS(t *testing.T) {
	fsys := StaticFS()
	f, err := fsys.Open("css/style.css")
	if err != nil {
		t.Fatalf("open static asset: %v", err)
	}
	_ = f.Close()
}
