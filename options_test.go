package spline

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.closed {
		t.Error("default closed = true, want false")
	}
	if o.curl != 0 {
		t.Errorf("default curl = %v, want 0", o.curl)
	}
	if o.alpha != 0.5 {
		t.Errorf("default alpha = %v, want 0.5 (centripetal)", o.alpha)
	}
	if o.tension != nil {
		t.Error("default tension is not nil")
	}
}

func TestOptionsApply(t *testing.T) {
	fn := TensionFunc(func(int, float64, float64) (float64, float64) { return 2, 3 })
	o := applyOptions([]Option{Closed(), WithCurl(0.7), WithAlpha(1), WithTension(fn)})

	if !o.closed {
		t.Error("Closed() not applied")
	}
	if o.curl != 0.7 {
		t.Errorf("curl = %v, want 0.7", o.curl)
	}
	if o.alpha != 1 {
		t.Errorf("alpha = %v, want 1", o.alpha)
	}
	if o.tension == nil {
		t.Fatal("tension not applied")
	}
	if t1, t2 := o.tension(0, 0, 0); t1 != 2 || t2 != 3 {
		t.Errorf("tension = (%v, %v), want (2, 3)", t1, t2)
	}
}
