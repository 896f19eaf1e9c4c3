package grid

import "weak"

// WeakDataSource sets p as the grid's content provider without keeping it
// alive. Once p is collected the grid behaves as if no provider were set.
func WeakDataSource[T any, P interface {
	*T
	ContentProvider
}](g *Grid, p P) {
	if (*T)(p) == nil {
		g.SetDataSource(nil)
		return
	}
	w := weak.Make((*T)(p))
	g.dataSource = func() ContentProvider {
		if v := w.Value(); v != nil {
			return P(v)
		}
		return nil
	}
	g.ReloadData()
}

// WeakDelegate sets o as the grid's layout observer without keeping it
// alive. Once o is collected sizes fall back to defaults and taps are
// dropped.
func WeakDelegate[T any, P interface {
	*T
	LayoutObserver
}](g *Grid, o P) {
	if (*T)(o) == nil {
		g.SetDelegate(nil)
		return
	}
	w := weak.Make((*T)(o))
	g.delegate = func() LayoutObserver {
		if v := w.Value(); v != nil {
			return P(v)
		}
		return nil
	}
	g.view.InvalidateLayout()
}
