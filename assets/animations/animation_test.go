package animations

import "testing"

func TestUpdateReportsFrameEntries(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)

	var entered []int
	for i := 0; i < 8; i++ {
		if a.Update() {
			entered = append(entered, a.Frame())
		}
	}

	// Two ticks per frame, looping back to the first
	want := []int{1, 2, 0, 1}
	if len(entered) != len(want) {
		t.Fatalf("entered %v, want %v", entered, want)
	}
	for i := range want {
		if entered[i] != want[i] {
			t.Fatalf("entered %v, want %v", entered, want)
		}
	}
	if !a.Looped {
		t.Fatalf("Looped should be set after wrapping")
	}
}

func TestFreezeOnCompleteEntersLastFrameOnce(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	a.FreezeOnComplete = true

	entries := 0
	for i := 0; i < 20; i++ {
		if a.Update() && a.Frame() == a.Last {
			entries++
		}
	}
	if entries != 1 {
		t.Fatalf("last frame entered %d times, want 1", entries)
	}
	if a.Frame() != 2 || !a.Looped {
		t.Fatalf("frame = %d looped = %v", a.Frame(), a.Looped)
	}

	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Fatalf("restart should rewind and unfreeze")
	}
	if !a.Update() {
		t.Fatalf("restarted clip should advance again")
	}
}
