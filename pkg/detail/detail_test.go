package detail

import (
	"reflect"
	"testing"

	"baitonavi/pkg/catalog"
)

func testCatalog() *catalog.Catalog {
	records := []catalog.JobRecord{
		{Title: "ホールスタッフ", Time: "12/1 21:00", FullTime: "12月1日 21:00 〜 23:30",
			Place: "渋谷", Price: "¥5,000", Color: "#E24A4A", HasOtherDates: true,
			Description: "接客業務", Items: []string{"印鑑"},
			Reviews: []catalog.Review{{User: "さとう", Date: "2025/11/02", Text: "よかった"}}},
		{Title: "キッチン補助", Time: "12/1 18:00", Place: "新宿", Price: "¥4,800", Color: "#50C878"},
		{Title: "品出し", Time: "12/2 9:00", Place: "池袋", Price: "¥4,100", Color: "#4A90D9"},
		{Title: "イベント運営", Time: "12/3 10:00", Place: "恵比寿", Price: "¥9,600", Color: "#E8A33D"},
		{Title: "カフェ店員", Time: "12/4 8:00", Place: "目黒", Price: "¥4,500", Color: "#9B59B6"},
	}
	return catalog.New(records)
}

func TestAssembleOutOfRange(t *testing.T) {
	a := NewAssembler(testCatalog())
	for _, i := range []int{-1, 5, 10} {
		if vm, ok := a.Assemble(i); ok || vm != nil {
			t.Errorf("Assemble(%d) should be a no-op", i)
		}
	}
	if _, ok := NewAssembler(nil).Assemble(0); ok {
		t.Error("nil catalog should assemble nothing")
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	a := NewAssembler(testCatalog())
	first, ok := a.Assemble(0)
	if !ok {
		t.Fatal("Assemble(0) failed")
	}
	second, _ := a.Assemble(0)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated assembly differs:\n%+v\n%+v", first, second)
	}
}

func TestFallbackFields(t *testing.T) {
	a := NewAssembler(testCatalog())
	vm, _ := a.Assemble(1) // record with only card fields

	if vm.Description != FallbackDescription {
		t.Errorf("description = %q", vm.Description)
	}
	if vm.Notes != FallbackNotes {
		t.Errorf("notes = %q", vm.Notes)
	}
	if vm.Address != FallbackAddress {
		t.Errorf("address = %q", vm.Address)
	}
	if vm.ShopName != FallbackShopName {
		t.Errorf("shop name = %q", vm.ShopName)
	}
	if vm.Items == nil || len(vm.Items) != 0 {
		t.Errorf("absent items should render as an empty list, got %#v", vm.Items)
	}
	if len(vm.Reviews) != 0 {
		t.Errorf("expected no reviews, got %d", len(vm.Reviews))
	}
}

func TestDisplayTimePrefersFullForm(t *testing.T) {
	a := NewAssembler(testCatalog())
	vm, _ := a.Assemble(0)
	if vm.DisplayTime != "12月1日 21:00 〜 23:30" {
		t.Fatalf("display time = %q", vm.DisplayTime)
	}
	vm, _ = a.Assemble(1)
	if vm.DisplayTime != "12/1 18:00" {
		t.Fatalf("display time = %q", vm.DisplayTime)
	}
}

func TestAlternateSlotsVisibility(t *testing.T) {
	a := NewAssembler(testCatalog())

	vm, _ := a.Assemble(0)
	if !vm.ShowAlternates {
		t.Fatal("record 0 has other dates, section must show")
	}
	if len(vm.Alternates) != 2 {
		t.Fatalf("expected the fixed two-entry schedule, got %d", len(vm.Alternates))
	}
	if vm.Alternates[1].Price != "¥5,000" {
		t.Fatalf("second slot price = %q, want the record price", vm.Alternates[1].Price)
	}
	if vm.Alternates[0].Price != "¥4,279" {
		t.Fatalf("first slot price = %q, want the fixed illustrative price", vm.Alternates[0].Price)
	}

	vm, _ = a.Assemble(1)
	if vm.ShowAlternates || len(vm.Alternates) != 0 {
		t.Fatal("record 1 has no other dates, section must be hidden entirely")
	}
}

func TestSimilarJobs(t *testing.T) {
	a := NewAssembler(testCatalog())
	vm, _ := a.Assemble(2)

	got := make([]int, 0, len(vm.Similar))
	for _, s := range vm.Similar {
		got = append(got, s.Index)
	}
	if want := []int{0, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("similar indices = %v, want %v", got, want)
	}
	for _, s := range vm.Similar {
		if s.Index == 2 {
			t.Fatal("similar jobs include the viewed record")
		}
	}

	// Chained opens: assembling a similar job's own index keeps resolving.
	next, ok := a.Assemble(vm.Similar[0].Index)
	if !ok || next.Title != "ホールスタッフ" {
		t.Fatalf("chained open resolved to %+v", next)
	}
}

func TestSimilarCountOnSmallCatalog(t *testing.T) {
	c := catalog.New([]catalog.JobRecord{
		{Title: "a", Price: "¥1,000"},
		{Title: "b", Price: "¥1,100"},
	})
	vm, _ := NewAssembler(c).Assemble(0)
	if len(vm.Similar) != 1 {
		t.Fatalf("similar count = %d, want min(3, len-1) = 1", len(vm.Similar))
	}
}
