package concierge

import "testing"

func TestStaticToolCatalogRegisterAndLookup(t *testing.T) {
	catalog := NewStaticToolCatalog(nil)
	if err := catalog.Register(ToolSpec{Name: "book_hotel", Description: "Book a hotel"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	spec, ok := catalog.Lookup("Book_Hotel")
	if !ok || spec.Name != "book_hotel" {
		t.Fatalf("lookup should be case-insensitive: %#v %v", spec, ok)
	}

	if err := catalog.Register(ToolSpec{Name: "book_hotel"}); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
	if err := catalog.Register(ToolSpec{Name: "   "}); err == nil {
		t.Fatalf("blank name should fail")
	}
}

func TestStaticToolCatalogPreservesOrder(t *testing.T) {
	catalog := NewStaticToolCatalog([]ToolSpec{
		{Name: "zeta"},
		{Name: "alpha"},
		{Name: "mid"},
	})
	specs := catalog.Specs()
	if len(specs) != 3 || specs[0].Name != "zeta" || specs[1].Name != "alpha" || specs[2].Name != "mid" {
		t.Fatalf("registration order lost: %#v", specs)
	}
}

func TestStaticToolCatalogSkipsInvalidSeeds(t *testing.T) {
	catalog := NewStaticToolCatalog([]ToolSpec{
		{Name: ""},
		{Name: "valid"},
	})
	if len(catalog.Specs()) != 1 {
		t.Fatalf("invalid seed should be skipped: %#v", catalog.Specs())
	}
}
