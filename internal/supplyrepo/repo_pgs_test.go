//go:build integration

package supplyrepo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/friendbank/friendbank/internal/supplyrepo"
	"github.com/friendbank/friendbank/pkg/configpkg"
	"github.com/friendbank/friendbank/pkg/dbpkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestAdjust(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	supplyRepo := supplyrepo.NewRepoPGS(tx)

	before, err := supplyRepo.Get(context.Background())
	if err != nil {
		t.Fatalf("supplyRepo.Get(context.Background()) returned error: %v", err)
	}

	afterAdd, err := supplyRepo.Adjust(context.Background(), "150.50")
	if err != nil {
		t.Fatalf(`supplyRepo.Adjust(context.Background(), "150.50") returned error: %v`, err)
	}

	want := decimal.RequireFromString(before).Add(decimal.RequireFromString("150.50"))
	if !want.Equal(decimal.RequireFromString(afterAdd)) {
		t.Errorf("total after add = %v, want %v", afterAdd, want)
	}

	afterSub, err := supplyRepo.Adjust(context.Background(), "-150.50")
	if err != nil {
		t.Fatalf(`supplyRepo.Adjust(context.Background(), "-150.50") returned error: %v`, err)
	}

	if !decimal.RequireFromString(before).Equal(decimal.RequireFromString(afterSub)) {
		t.Errorf("total after subtract = %v, want %v", afterSub, before)
	}

	got, err := supplyRepo.Get(context.Background())
	if err != nil {
		t.Fatalf("supplyRepo.Get(context.Background()) returned error: %v", err)
	}

	if !decimal.RequireFromString(got).Equal(decimal.RequireFromString(afterSub)) {
		t.Errorf("supplyRepo.Get() = %v, want %v", got, afterSub)
	}
}
