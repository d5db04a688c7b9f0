package domain

import "testing"

func TestSamplesReturnTwoDeterministicRecords(t *testing.T) {
	clients := SampleClientProfiles()
	if len(clients) != 2 {
		t.Fatalf("client samples = %d, want 2", len(clients))
	}
	again := SampleClientProfiles()
	for i := range clients {
		if clients[i].ID != again[i].ID {
			t.Fatalf("sample identities not stable: %s vs %s", clients[i].ID, again[i].ID)
		}
	}

	if got := len(SampleOrderEntries()); got != 2 {
		t.Fatalf("order samples = %d, want 2", got)
	}
	if got := len(SampleMaterialStock()); got != 2 {
		t.Fatalf("material samples = %d, want 2", got)
	}
	if got := len(SampleDesignRequests()); got != 2 {
		t.Fatalf("design samples = %d, want 2", got)
	}
}

func TestSampleIdentitiesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	record := func(id string) {
		if seen[id] {
			t.Fatalf("duplicate sample identity %s", id)
		}
		seen[id] = true
	}
	for _, c := range SampleClientProfiles() {
		record(c.ID)
	}
	for _, o := range SampleOrderEntries() {
		record(o.ID)
	}
	for _, m := range SampleMaterialStock() {
		record(m.ID)
	}
	for _, d := range SampleDesignRequests() {
		record(d.ID)
	}
}

func TestStringPtr(t *testing.T) {
	if StringPtr("") != nil {
		t.Fatal("blank input should map to nil")
	}
	p := StringPtr("x")
	if p == nil || *p != "x" {
		t.Fatalf("got %v", p)
	}
}
