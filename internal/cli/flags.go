package cli

import (
	"github.com/spf13/pflag"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

// paramFlags binds one CLI flag per dough parameter. Only flags the user
// actually set become overrides, so a profile value is never clobbered by a
// flag default.
type paramFlags struct {
	w            int
	temp         float64
	yeast        string
	hydration    float64
	saltPerKg    float64
	ballWeight   float64
	balls        int
	totalHours   float64
	fridgeHours  float64
	warmupHours  float64
	fridgeFactor float64
	start        string
}

func (f *paramFlags) register(fs *pflag.FlagSet) {
	d := domain.DefaultParams()

	fs.IntVar(&f.w, "w", d.W, "flour strength W (200-450)")
	fs.Float64Var(&f.temp, "temp", d.TempC, "room temperature in °C")
	fs.StringVar(&f.yeast, "yeast", string(d.Yeast), "yeast type: dry|fresh")
	fs.Float64Var(&f.hydration, "hydration", d.Hydration, "water over flour (0.55-0.85)")
	fs.Float64Var(&f.saltPerKg, "salt-per-kg", d.SaltPerKg, "salt in grams per kg of flour")
	fs.Float64Var(&f.ballWeight, "ball-weight", d.BallWeightG, "weight of one dough ball in grams")
	fs.IntVar(&f.balls, "balls", d.Balls, "number of dough balls")
	fs.Float64Var(&f.totalHours, "total-hours", d.TotalHours, "total fermentation time in hours")
	fs.Float64Var(&f.fridgeHours, "fridge-hours", d.FridgeHours, "hours in the fridge (0 = no fridge)")
	fs.Float64Var(&f.warmupHours, "warmup-hours", d.WarmupHours, "bench rest after the fridge, in hours")
	fs.Float64Var(&f.fridgeFactor, "fridge-factor", d.FridgeFactor, "how much a fridge hour counts towards fermentation")
	fs.StringVar(&f.start, "start", "", "start time HH:MM (default: now)")
}

func (f *paramFlags) overrides(fs *pflag.FlagSet) (domain.ParamOverrides, error) {
	var o domain.ParamOverrides

	if fs.Changed("w") {
		o.W = &f.w
	}
	if fs.Changed("temp") {
		o.TempC = &f.temp
	}
	if fs.Changed("yeast") {
		k, err := domain.ParseYeastKind(f.yeast)
		if err != nil {
			return domain.ParamOverrides{}, &domain.OpError{
				Op:   "cli.flags",
				Kind: domain.KindInvalidParams,
				Err:  &domain.ValidationError{Problems: []string{err.Error()}},
			}
		}
		o.Yeast = &k
	}
	if fs.Changed("hydration") {
		o.Hydration = &f.hydration
	}
	if fs.Changed("salt-per-kg") {
		o.SaltPerKg = &f.saltPerKg
	}
	if fs.Changed("ball-weight") {
		o.BallWeightG = &f.ballWeight
	}
	if fs.Changed("balls") {
		o.Balls = &f.balls
	}
	if fs.Changed("total-hours") {
		o.TotalHours = &f.totalHours
	}
	if fs.Changed("fridge-hours") {
		o.FridgeHours = &f.fridgeHours
	}
	if fs.Changed("warmup-hours") {
		o.WarmupHours = &f.warmupHours
	}
	if fs.Changed("fridge-factor") {
		o.FridgeFactor = &f.fridgeFactor
	}
	if fs.Changed("start") {
		o.Start = &f.start
	}
	return o, nil
}
