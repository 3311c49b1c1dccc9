package animal

import (
	"testing"

	"github.com/talgya/fauna/internal/entropy"
	"github.com/talgya/fauna/internal/habitat"
	"github.com/talgya/fauna/internal/species"
)

func testSpecies(t *testing.T) *species.Species {
	t.Helper()
	sp, err := species.New(species.Species{
		Name:            "test-hare",
		MinBreedingAge:  1,
		MaxBreedingAge:  7,
		MinTolerance:    0,
		MaxTolerance:    30,
		RequiredFood:    1,
		RequiredWater:   1,
		GestationPeriod: 2,
		MaxAge:          10,
	})
	if err != nil {
		t.Fatalf("species.New() failed: %v", err)
	}
	return sp
}

func female(t *testing.T, sp *species.Species, ageMonths int, rng *entropy.Source) *Animal {
	t.Helper()
	a := NewWithGender(sp, Female, rng)
	a.ageMonths = ageMonths
	return a
}

func TestHungerThreshold(t *testing.T) {
	sp := testSpecies(t)
	rng := entropy.New(1)
	a := New(sp, rng)

	// Plenty of food: hunger resets on every feed.
	env := habitat.NewEnvironment(10, 10, 20)
	if cause := a.eat(env); cause != CauseNone {
		t.Fatalf("eat with food available returned %v", cause)
	}
	if a.Hunger() != 0 {
		t.Fatalf("hunger after successful feed = %d, want 0", a.Hunger())
	}

	// Empty pool: two missed meals are tolerated, the third is fatal.
	empty := habitat.NewEnvironment(0, 10, 20)
	if cause := a.eat(empty); cause != CauseNone {
		t.Fatalf("first missed meal returned %v", cause)
	}
	if cause := a.eat(empty); cause != CauseNone {
		t.Fatalf("second missed meal returned %v", cause)
	}
	if cause := a.eat(empty); cause != CauseStarved {
		t.Fatalf("third missed meal returned %v, want CauseStarved", cause)
	}
}

func TestHungerResetsAfterMisses(t *testing.T) {
	sp := testSpecies(t)
	a := New(sp, entropy.New(1))

	empty := habitat.NewEnvironment(0, 10, 20)
	a.eat(empty)
	a.eat(empty)
	if a.Hunger() != 2 {
		t.Fatalf("hunger after two misses = %d, want 2", a.Hunger())
	}

	// A feed on the brink clears the counter and the cycle restarts.
	env := habitat.NewEnvironment(10, 10, 20)
	if cause := a.eat(env); cause != CauseNone {
		t.Fatalf("feed on the brink returned %v", cause)
	}
	if a.Hunger() != 0 {
		t.Fatalf("hunger after recovery feed = %d, want 0", a.Hunger())
	}
	if cause := a.eat(empty); cause != CauseNone {
		t.Fatalf("first miss after recovery returned %v", cause)
	}
}

func TestWaterDenialImmediatelyFatal(t *testing.T) {
	sp := testSpecies(t)
	a := New(sp, entropy.New(1))

	dry := habitat.NewEnvironment(10, 0, 20)
	age, hunger := a.Age(), a.Hunger()
	if cause := a.drink(dry); cause != CauseDehydrated {
		t.Fatalf("drink from empty pool returned %v, want CauseDehydrated", cause)
	}
	if a.Age() != age || a.Hunger() != hunger {
		t.Fatalf("drink mutated age/hunger: age %d→%d, hunger %d→%d", age, a.Age(), hunger, a.Hunger())
	}
}

func TestToleranceBoundaries(t *testing.T) {
	sp := testSpecies(t) // band [0, 30]
	a := New(sp, entropy.New(1))

	cases := []struct {
		temp float64
		want Cause
	}{
		{0, CauseNone},
		{30, CauseNone},
		{15, CauseNone},
		{30.01, CauseOverheated},
		{-0.01, CauseFroze},
		{50, CauseOverheated},
		{-20, CauseFroze},
	}
	for _, tc := range cases {
		env := habitat.NewEnvironment(10, 10, tc.temp)
		if got := a.tolerate(env); got != tc.want {
			t.Errorf("tolerate at %g°C = %v, want %v", tc.temp, got, tc.want)
		}
	}
}

func TestAgingExactTick(t *testing.T) {
	sp := testSpecies(t) // maxAge 10 years = 120 months
	a := New(sp, entropy.New(1))
	env := habitat.NewEnvironment(10, 10, 20)

	for i := 1; i <= 120; i++ {
		if cause := a.age(env); cause != CauseNone {
			t.Fatalf("age() call %d returned %v, want CauseNone", i, cause)
		}
	}
	if cause := a.age(env); cause != CauseNaturalCauses {
		t.Fatalf("age() call 121 returned %v, want CauseNaturalCauses", cause)
	}
}

func TestMaturityBoundaries(t *testing.T) {
	sp := testSpecies(t) // breeding range [12, 84] months
	rng := entropy.New(1)

	cases := []struct {
		ageMonths int
		want      bool
	}{
		{0, false},
		{11, false},
		{12, true},
		{13, true},
		{83, true},
		{84, true},
		{85, false},
		{120, false},
	}
	for _, tc := range cases {
		a := Spawn(sp, tc.ageMonths, rng)
		if got := a.IsMature(); got != tc.want {
			t.Errorf("IsMature() at %d months = %v, want %v", tc.ageMonths, got, tc.want)
		}
	}
}

func TestGestationCycle(t *testing.T) {
	sp := testSpecies(t) // gestation period 2 ticks
	a := female(t, sp, 24, entropy.New(1))

	if a.IsPregnant() {
		t.Fatal("fresh animal reports pregnant")
	}

	// Calls 1..period advance the counter without a birth.
	for i := 1; i <= sp.GestationPeriod; i++ {
		child := a.Gestate()
		if child != nil {
			t.Fatalf("Gestate() call %d produced a newborn early", i)
		}
		if !a.IsPregnant() {
			t.Fatalf("IsPregnant() false mid-gestation (call %d)", i)
		}
		if a.gestation != i {
			t.Fatalf("gestation counter = %d after call %d", a.gestation, i)
		}
	}

	// Call period+1 delivers exactly one newborn and resets the counter.
	child := a.Gestate()
	if child == nil {
		t.Fatalf("Gestate() call %d produced no newborn", sp.GestationPeriod+1)
	}
	if child.Age() != 0 || child.Species() != sp {
		t.Fatalf("newborn age=%d species=%v, want age 0 of same species", child.Age(), child.Species())
	}
	if a.IsPregnant() || a.gestation != 0 {
		t.Fatalf("mother still pregnant after birth: gestation=%d", a.gestation)
	}

	// The cycle can restart.
	if child := a.Gestate(); child != nil {
		t.Fatal("first Gestate() of the second cycle produced a newborn")
	}
	if !a.IsPregnant() {
		t.Fatal("second cycle did not register as pregnant")
	}
}

func TestCopulateNoOps(t *testing.T) {
	sp := testSpecies(t)
	rng := entropy.New(1)
	abundant := habitat.NewEnvironment(10, 10, 20)

	male := NewWithGender(sp, Male, rng)
	male.ageMonths = 24
	male.Copulate(abundant)
	if male.IsPregnant() {
		t.Error("male became pregnant")
	}

	immature := female(t, sp, 6, rng)
	immature.Copulate(abundant)
	if immature.IsPregnant() {
		t.Error("immature female became pregnant")
	}

	tooOld := female(t, sp, 100, rng)
	tooOld.Copulate(abundant)
	if tooOld.IsPregnant() {
		t.Error("past-breeding female became pregnant")
	}

	pregnant := female(t, sp, 24, rng)
	pregnant.Gestate()
	before := pregnant.gestation
	pregnant.Copulate(abundant)
	if pregnant.gestation != before {
		t.Errorf("Copulate advanced an existing gestation: %d → %d", before, pregnant.gestation)
	}
}

func TestCopulateResourceAbundance(t *testing.T) {
	sp := testSpecies(t)
	a := female(t, sp, 24, entropy.New(1))

	// Nonzero food and water make conception unconditional.
	abundant := habitat.NewEnvironment(1, 1, 20)
	a.Copulate(abundant)
	if !a.IsPregnant() {
		t.Fatal("mature female did not conceive with resources available")
	}
	// Copulation itself consumes nothing.
	if abundant.Food() != 1 || abundant.Water() != 1 {
		t.Fatalf("Copulate consumed resources: food=%d water=%d", abundant.Food(), abundant.Water())
	}
}

func TestCopulateOpportunisticRoll(t *testing.T) {
	sp := testSpecies(t)
	a := female(t, sp, 24, entropy.New(99))

	// With the pool exhausted only the 1-in-200 roll can fire. Enough
	// invocations make it fire with near certainty; the fixed seed keeps
	// the test deterministic.
	barren := habitat.NewEnvironment(0, 0, 20)
	for i := 0; i < 5000 && !a.IsPregnant(); i++ {
		a.Copulate(barren)
	}
	if !a.IsPregnant() {
		t.Fatal("opportunistic roll never fired in 5000 invocations")
	}
}

func TestSurviveHaltAtFirstFailure(t *testing.T) {
	sp := testSpecies(t)
	rng := entropy.New(7)

	// Water is the only missing resource, so every animal dies dehydrated
	// no matter which checks ran before the fatal one.
	for i := 0; i < 50; i++ {
		a := New(sp, rng)
		dry := habitat.NewEnvironment(10, 0, 20)
		if cause := a.Survive(dry); cause != CauseDehydrated {
			t.Fatalf("Survive with dry pool returned %v, want CauseDehydrated", cause)
		}
	}
}

func TestSurviveCheckOrderVaries(t *testing.T) {
	sp := testSpecies(t)
	rng := entropy.New(7)

	// Age advances only when the aging check runs before the fatal drink.
	// Across many animals both orderings must occur.
	seenAged := false
	seenUnaged := false
	for i := 0; i < 200; i++ {
		a := New(sp, rng)
		dry := habitat.NewEnvironment(10, 0, 20)
		a.Survive(dry)
		switch a.Age() {
		case 0:
			seenUnaged = true
		case 1:
			seenAged = true
		default:
			t.Fatalf("age %d after a single Survive", a.Age())
		}
	}
	if !seenAged || !seenUnaged {
		t.Fatalf("check order never varied: aged=%v unaged=%v", seenAged, seenUnaged)
	}
}

func TestSurviveLongRun(t *testing.T) {
	sp := testSpecies(t) // food 1, water 1, band [0,30], maxAge 10
	a := New(sp, entropy.New(3))
	env := habitat.NewEnvironment(1, 1, 20)

	// Exactly enough resources every tick: the animal survives until its
	// lifespan runs out at 120 months, then dies of natural causes on the
	// next tick.
	for tick := 1; tick <= 120; tick++ {
		env.Replenish()
		if cause := a.Survive(env); cause != CauseNone {
			t.Fatalf("tick %d: Survive returned %v (age %d)", tick, cause, a.Age())
		}
	}
	if a.Age() != 120 {
		t.Fatalf("age after 120 ticks = %d, want 120", a.Age())
	}
	env.Replenish()
	if cause := a.Survive(env); cause != CauseNaturalCauses {
		t.Fatalf("tick 121: Survive returned %v, want CauseNaturalCauses", cause)
	}
}

func TestPregnancyInvariant(t *testing.T) {
	sp := testSpecies(t)
	a := female(t, sp, 24, entropy.New(1))

	check := func() {
		if a.IsPregnant() != (a.gestation > 0) {
			t.Fatalf("IsPregnant()=%v but gestation=%d", a.IsPregnant(), a.gestation)
		}
	}

	check()
	for i := 0; i < 10; i++ {
		a.Gestate()
		check()
	}
}

func TestGenderAssignment(t *testing.T) {
	sp := testSpecies(t)
	rng := entropy.New(11)

	males, females := 0, 0
	for i := 0; i < 500; i++ {
		a := New(sp, rng)
		if a.IsMale() == a.IsFemale() {
			t.Fatal("animal is neither or both genders")
		}
		if a.IsMale() {
			males++
		} else {
			females++
		}
	}
	// Uniform assignment: both genders must be well represented.
	if males < 150 || females < 150 {
		t.Fatalf("gender split %d/%d is not plausibly uniform", males, females)
	}
}
