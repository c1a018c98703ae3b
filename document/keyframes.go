package document

import (
	"sort"
)

// Keyframes is a sparse frame-number to value map. Frames are 1-based. A
// lookup between keys resolves to the nearest preceding keyframe.
type Keyframes[T any] struct {
	frames []int // sorted
	values map[int]T
}

func (k *Keyframes[T]) Len() int {
	return len(k.frames)
}

// Frames returns the keyed frame numbers in ascending order.
func (k *Keyframes[T]) Frames() []int {
	out := make([]int, len(k.frames))
	copy(out, k.frames)
	return out
}

// Set stores v at frame, replacing any existing keyframe there.
func (k *Keyframes[T]) Set(frame int, v T) {
	if k.values == nil {
		k.values = make(map[int]T)
	}
	if _, ok := k.values[frame]; !ok {
		i := sort.SearchInts(k.frames, frame)
		k.frames = append(k.frames, 0)
		copy(k.frames[i+1:], k.frames[i:])
		k.frames[i] = frame
	}
	k.values[frame] = v
}

// Exact returns the value keyed at exactly frame.
func (k *Keyframes[T]) Exact(frame int) (T, bool) {
	v, ok := k.values[frame]
	return v, ok
}

// At returns the value in effect at frame: the keyframe at frame, or the
// closest one before it. ok is false when no keyframe precedes frame.
func (k *Keyframes[T]) At(frame int) (v T, ok bool) {
	// index of the first key > frame
	i := sort.Search(len(k.frames), func(i int) bool { return k.frames[i] > frame })
	if i == 0 {
		return v, false
	}
	return k.values[k.frames[i-1]], true
}
