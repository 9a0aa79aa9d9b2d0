package cuba

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func noopIntegrand(ndim, ncomp int, x, f []float64, _ any) error {
	for i := range f {
		f[i] = 1
	}
	return nil
}

func TestParamsDefaults(t *testing.T) {
	p := Params{Integrand: noopIntegrand, NDim: 3}.withDefaults()

	require.Equal(t, DefaultNComp, p.NComp)
	require.Equal(t, DefaultNVec, p.NVec)
	require.Equal(t, DefaultEpsRel, p.EpsRel)
	require.Equal(t, DefaultEpsAbs, p.EpsAbs)
	require.Equal(t, DefaultMaxEval, p.MaxEval)
	require.Equal(t, 0, p.MinEval)
	require.Equal(t, 0, p.Seed)
	require.Empty(t, p.StateFile)
}

func TestParamsDefaultsDoNotClobber(t *testing.T) {
	p := Params{
		Integrand: noopIntegrand,
		NDim:      2,
		NComp:     4,
		NVec:      8,
		EpsRel:    1e-6,
		EpsAbs:    1e-9,
		MaxEval:   123456,
	}.withDefaults()

	require.Equal(t, 4, p.NComp)
	require.Equal(t, 8, p.NVec)
	require.Equal(t, 1e-6, p.EpsRel)
	require.Equal(t, 1e-9, p.EpsAbs)
	require.Equal(t, 123456, p.MaxEval)
}

func TestVegasDefaults(t *testing.T) {
	p := VegasParams{Params: Params{Integrand: noopIntegrand, NDim: 1}}.withDefaults()

	require.Equal(t, DefaultNStart, p.NStart)
	require.Equal(t, DefaultNIncrease, p.NIncrease)
	require.Equal(t, DefaultNBatch, p.NBatch)
	require.Equal(t, DefaultGridNo, p.GridNo)
}

func TestSuaveDefaults(t *testing.T) {
	p := SuaveParams{Params: Params{Integrand: noopIntegrand, NDim: 1}}.withDefaults()

	require.Equal(t, DefaultNNew, p.NNew)
	require.Equal(t, DefaultNMin, p.NMin)
	require.Equal(t, DefaultFlatness, p.Flatness)
}

func TestParamsValidate(t *testing.T) {
	base := func() Params {
		return Params{Integrand: noopIntegrand, NDim: 2}.withDefaults()
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base().validate())
	})

	t.Run("ndim", func(t *testing.T) {
		p := base()
		p.NDim = 0
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("ncomp", func(t *testing.T) {
		p := base()
		p.NComp = -1
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("nvec", func(t *testing.T) {
		p := base()
		p.NVec = -2
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("no integrand", func(t *testing.T) {
		p := base()
		p.Integrand = nil
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("both integrands", func(t *testing.T) {
		p := base()
		p.NativeIntegrand = unsafe.Pointer(uintptr(1))
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("native integrand with non-pointer userdata", func(t *testing.T) {
		p := base()
		p.Integrand = nil
		p.NativeIntegrand = unsafe.Pointer(uintptr(1))
		p.UserData = "not a pointer"
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("native integrand with pointer userdata", func(t *testing.T) {
		p := base()
		p.Integrand = nil
		p.NativeIntegrand = unsafe.Pointer(uintptr(1))
		p.UserData = unsafe.Pointer(uintptr(2))
		require.NoError(t, p.validate())
	})

	t.Run("negative seed", func(t *testing.T) {
		p := base()
		p.Seed = -1
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("negative mineval", func(t *testing.T) {
		p := base()
		p.MinEval = -5
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})
}

func TestDivonneValidate(t *testing.T) {
	base := func() DivonneParams {
		return DivonneParams{
			Params:   Params{Integrand: noopIntegrand, NDim: 3},
			Key1:     47,
			Key2:     1,
			Key3:     1,
			MaxPass:  5,
			MaxChisq: 10,
		}.withDefaults()
	}

	t.Run("ldxgiven defaults to ndim", func(t *testing.T) {
		p := base()
		require.Equal(t, 3, p.LdXGiven)
		require.NoError(t, p.validate())
	})

	t.Run("two given rows", func(t *testing.T) {
		p := base()
		p.Given = make([]float64, 2*p.NDim)
		require.NoError(t, p.validate())
		require.Equal(t, 2, p.nGiven())
	})

	t.Run("given not a multiple of row length", func(t *testing.T) {
		p := base()
		p.Given = make([]float64, 2*p.NDim+1)
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("row length below ndim", func(t *testing.T) {
		p := base()
		p.LdXGiven = p.NDim - 1
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("row length above ndim", func(t *testing.T) {
		p := base()
		p.LdXGiven = p.NDim + 2
		p.Given = make([]float64, 3*p.LdXGiven)
		require.NoError(t, p.validate())
		require.Equal(t, 3, p.nGiven())
	})

	t.Run("nextra without peak finder", func(t *testing.T) {
		p := base()
		p.NExtra = 4
		require.ErrorIs(t, p.validate(), ErrInvalidParams)
	})

	t.Run("peak finder without nextra is fine", func(t *testing.T) {
		p := base()
		p.PeakFinder = func([]Bounds, int) ([]float64, error) { return nil, nil }
		require.NoError(t, p.validate())
	})
}

func TestIntegrandFuncPassesUserDataVerbatim(t *testing.T) {
	type token struct{ n int }
	want := &token{n: 42}

	var got any
	p := Params{
		NDim:     1,
		UserData: want,
		Integrand: func(ndim, ncomp int, x, f []float64, userData any) error {
			got = userData
			return nil
		},
	}.withDefaults()

	fn, raw, rawUD := p.integrandFunc()
	require.NotNil(t, fn)
	require.Nil(t, raw)
	require.Nil(t, rawUD)

	require.NoError(t, fn(1, 1, []float64{0.5}, make([]float64, 1)))
	require.Same(t, want, got)
}

func TestIntegrandFuncRawPassThrough(t *testing.T) {
	fake := unsafe.Pointer(uintptr(0x1234))
	ud := unsafe.Pointer(uintptr(0x5678))

	p := Params{NDim: 1, NativeIntegrand: fake, UserData: ud}.withDefaults()
	fn, raw, rawUD := p.integrandFunc()

	require.Nil(t, fn)
	require.Equal(t, fake, raw)
	require.Equal(t, ud, rawUD)
}
