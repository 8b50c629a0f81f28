package market

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/artefakt-io/artefakt/errors"
	"github.com/artefakt-io/artefakt/store"
)

func TestConfigurationValidate(t *testing.T) {
	treasury := common.HexToAddress("0x5000000000000000000000000000000000000003")
	operator := common.HexToAddress("0x5000000000000000000000000000000000000004")

	Convey("a marketplace configuration", t, func() {
		valid := Configuration{
			ProtocolFeeBps: 300,
			Treasury:       treasury,
			Operators:      []common.Address{operator},
		}

		Convey("with a fee, treasury and operators is accepted", func() {
			So(valid.Validate(), ShouldBeNil)
		})

		Convey("with a fee above the denominator is rejected", func() {
			c := valid
			c.ProtocolFeeBps = 10001
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("without a treasury is rejected", func() {
			c := valid
			c.Treasury = common.Address{}
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("without operators is rejected", func() {
			c := valid
			c.Operators = nil
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("with an empty operator entry is rejected", func() {
			c := valid
			c.Operators = []common.Address{{}}
			So(c.Validate(), ShouldNotBeNil)
		})
	})
}

func TestConfigurationRoundTrip(t *testing.T) {
	db := store.MemStore()

	var missing Configuration
	if err := LoadConfiguration(db, &missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("uninitialised configuration: %+v", err)
	}

	conf := Configuration{
		ProtocolFeeBps: 250,
		Treasury:       common.HexToAddress("0x5000000000000000000000000000000000000003"),
		Operators: []common.Address{
			common.HexToAddress("0x5000000000000000000000000000000000000004"),
			common.HexToAddress("0x5000000000000000000000000000000000000005"),
		},
	}
	if err := SaveConfiguration(db, &conf); err != nil {
		t.Fatalf("save: %+v", err)
	}

	var loaded Configuration
	if err := LoadConfiguration(db, &loaded); err != nil {
		t.Fatalf("load: %+v", err)
	}
	if loaded.ProtocolFeeBps != 250 || len(loaded.Operators) != 2 {
		t.Fatalf("unexpected configuration: %+v", loaded)
	}
	if !loaded.IsTrustedOperator(conf.Operators[1]) {
		t.Fatal("operator not trusted")
	}
	if loaded.IsTrustedOperator(conf.Treasury) {
		t.Fatal("treasury must not be trusted")
	}

	// Saving a broken configuration must not overwrite the singleton.
	broken := Configuration{}
	if err := SaveConfiguration(db, &broken); err == nil {
		t.Fatal("broken configuration accepted")
	}
}
