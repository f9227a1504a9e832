package services

import (
	"errors"
	"testing"

	"github.com/lamargherita/go-storefront/app/models"
)

func isConflict(err error) bool {
	var ve models.ValidationError
	return errors.As(err, &ve) && ve.Code == models.CodeConflictingDistribution
}

func TestDistributionSet_WholeThenHalfConflicts(t *testing.T) {
	ds := NewDistributionSet()
	if err := ds.ApplyWhole("no-mozzarella"); err != nil {
		t.Fatal(err)
	}
	err := ds.ApplyHalf("no-mozzarella", models.DistributionLeft)
	if !isConflict(err) {
		t.Fatalf("expected conflicting_distribution, got %v", err)
	}
}

func TestDistributionSet_HalfThenWholeConflicts(t *testing.T) {
	ds := NewDistributionSet()
	if err := ds.ApplyHalf("pepperoni", models.DistributionRight); err != nil {
		t.Fatal(err)
	}
	if err := ds.ApplyWhole("pepperoni"); !isConflict(err) {
		t.Fatalf("expected conflicting_distribution, got %v", err)
	}
}

func TestDistributionSet_LeftRightPairAllowed(t *testing.T) {
	ds := NewDistributionSet()
	if err := ds.ApplyHalf("pepperoni", models.DistributionLeft); err != nil {
		t.Fatal(err)
	}
	if err := ds.ApplyHalf("pepperoni", models.DistributionRight); err != nil {
		t.Fatal(err)
	}
}

func TestDistributionSet_DuplicateSideConflicts(t *testing.T) {
	ds := NewDistributionSet()
	if err := ds.ApplyHalf("pepperoni", models.DistributionLeft); err != nil {
		t.Fatal(err)
	}
	if err := ds.ApplyHalf("pepperoni", models.DistributionLeft); !isConflict(err) {
		t.Fatalf("expected conflicting_distribution, got %v", err)
	}
}

func TestDistributionSet_DuplicateWholeConflicts(t *testing.T) {
	ds := NewDistributionSet()
	if err := ds.ApplyWhole("pepperoni"); err != nil {
		t.Fatal(err)
	}
	if err := ds.ApplyWhole("pepperoni"); !isConflict(err) {
		t.Fatalf("expected conflicting_distribution, got %v", err)
	}
}

func TestDistributionSet_IndependentOptions(t *testing.T) {
	ds := NewDistributionSet()
	if err := ds.ApplyWhole("pepperoni"); err != nil {
		t.Fatal(err)
	}
	if err := ds.ApplyHalf("mushrooms", models.DistributionLeft); err != nil {
		t.Fatal(err)
	}
}
