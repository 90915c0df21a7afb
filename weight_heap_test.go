package bluenoise

import "testing"

func heapFrom(weights map[int]float64) *weightHeap {
	entries := make([]weightEntry, 0, len(weights))
	for id, w := range weights {
		entries = append(entries, weightEntry{id: id, weight: w})
	}
	return newWeightHeap(entries)
}

func TestWeightHeap_PopMaxOrder(t *testing.T) {
	h := heapFrom(map[int]float64{0: 1.5, 1: 3.0, 2: 0.25, 3: 2.0})

	wantIDs := []int{1, 3, 0, 2}
	for i, want := range wantIDs {
		got := h.popMax()
		if got.id != want {
			t.Fatalf("pop %d: id = %d, want %d", i, got.id, want)
		}
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d after draining, want 0", h.Len())
	}
}

func TestWeightHeap_TieBreaksOnLowerID(t *testing.T) {
	h := heapFrom(map[int]float64{7: 1.0, 2: 1.0, 9: 1.0, 4: 1.0})

	wantIDs := []int{2, 4, 7, 9}
	for i, want := range wantIDs {
		if got := h.popMax(); got.id != want {
			t.Fatalf("pop %d: id = %d, want %d (ties break toward lower id)", i, got.id, want)
		}
	}
}

func TestWeightHeap_DecreaseReorders(t *testing.T) {
	h := heapFrom(map[int]float64{0: 5, 1: 4, 2: 3})

	// Knock the current maximum below everything else.
	h.decrease(0, 4.5)

	if got := h.popMax(); got.id != 1 {
		t.Fatalf("after decrease, popMax().id = %d, want 1", got.id)
	}
	if got := h.popMax(); got.id != 2 {
		t.Fatalf("second pop id = %d, want 2", got.id)
	}
	got := h.popMax()
	if got.id != 0 || got.weight != 0.5 {
		t.Fatalf("last pop = {id %d, weight %v}, want {id 0, weight 0.5}", got.id, got.weight)
	}
}

func TestWeightHeap_DecreaseEliminatedIDIsSkipped(t *testing.T) {
	h := heapFrom(map[int]float64{0: 2, 1: 1})

	popped := h.popMax()
	if popped.id != 0 {
		t.Fatalf("popMax().id = %d, want 0", popped.id)
	}

	// Decrementing the already-eliminated point must be a no-op.
	h.decrease(0, 1)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if h.contains(0) {
		t.Error("contains(0) = true after elimination, want false")
	}
	if !h.contains(1) {
		t.Error("contains(1) = false, want true")
	}
}

func TestWeightHeap_SlotTrackingSurvivesChurn(t *testing.T) {
	h := heapFrom(map[int]float64{0: 10, 1: 20, 2: 30, 3: 40, 4: 50})

	h.decrease(4, 45) // 50 -> 5
	h.decrease(3, 39) // 40 -> 1
	h.decrease(2, 2)  // 30 -> 28

	wantIDs := []int{2, 1, 0, 4, 3}
	for i, want := range wantIDs {
		if got := h.popMax(); got.id != want {
			t.Fatalf("pop %d: id = %d, want %d", i, got.id, want)
		}
	}
}
