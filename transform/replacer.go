package transform

import "github.com/hqdem/gatesynth/builder"

// Replacer decides whether a candidate builder.Effect (the signed cost
// delta builder.EvaluateReplace reports for a proposed splice) is worth
// committing. Passes call Accept before every builder.Replace; a Replacer
// that rejects leaves the builder untouched and the pass moves on to its
// next candidate.
type Replacer interface {
	Accept(effect builder.Effect) bool
}

// AreaReplacer judges candidates purely on entry count. In its default
// (non-zero-cost) mode it demands a strict size reduction; in zero-cost
// mode it also accepts size-neutral restructurings, which is useful right
// before a pass that can exploit the new shape even though this step alone
// didn't shrink anything.
type AreaReplacer struct {
	ZeroCost bool
}

func (r AreaReplacer) Accept(effect builder.Effect) bool {
	if r.ZeroCost {
		return effect.Size <= 0
	}
	return effect.Size < 0
}

// DepthReplacer judges candidates on depth, the same zero-cost convention
// as AreaReplacer but applied to the critical-path dimension instead of
// size.
type DepthReplacer struct {
	ZeroCost bool
}

func (r DepthReplacer) Accept(effect builder.Effect) bool {
	if r.ZeroCost {
		return effect.Depth <= 0
	}
	return effect.Depth < 0
}

// DefaultReplacer accepts a candidate that improves size outright, or that
// holds size even and improves depth — the ordering rewrite and
// resubstitute passes use when no explicit variant is requested.
type DefaultReplacer struct {
	ZeroCost bool
}

func (r DefaultReplacer) Accept(effect builder.Effect) bool {
	if effect.Size < 0 {
		return true
	}
	if effect.Size == 0 && effect.Depth < 0 {
		return true
	}
	return r.ZeroCost && effect.Size == 0 && effect.Depth == 0
}
