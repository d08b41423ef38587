package keymap

import "slices"

// Resolver looks actions up by key within a context.
type Resolver struct {
	byKey map[string]map[string]Action // context, key
	keys  map[Action][]string          // bound keys in declaration order
}

// NewResolver indexes bindings. A key bound twice in one context resolves
// to the later binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey: make(map[string]map[string]Action),
		keys:  make(map[Action][]string),
	}
	for _, b := range bindings {
		ctx, ok := r.byKey[b.Context]
		if !ok {
			ctx = make(map[string]Action, len(b.Keys))
			r.byKey[b.Context] = ctx
		}
		for _, k := range b.Keys {
			ctx[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key in context, or in the global
// context when context does not bind it. Unbound keys yield "".
func (r *Resolver) Resolve(context, key string) Action {
	if a, ok := r.byKey[context][key]; ok {
		return a
	}
	return r.byKey[ContextGlobal][key]
}

// KeysFor lists the keys bound to an action across all contexts.
func (r *Resolver) KeysFor(a Action) []string {
	return r.keys[a]
}
