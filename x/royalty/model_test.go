package royalty

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigValidate(t *testing.T) {
	Convey("a royalty configuration", t, func() {
		valid := Config{
			Splits: []Split{
				{Account: minter, Shares: 6000},
				{Account: split1, Shares: 4000},
			},
			RoyaltyBps: 500,
		}

		Convey("with shares summing to 10000 is accepted", func() {
			So(valid.Validate(), ShouldBeNil)
		})

		Convey("without splits and a zero rate is accepted", func() {
			So(Config{}.Validate(), ShouldBeNil)
		})

		Convey("without splits but a non-zero rate is rejected", func() {
			c := Config{RoyaltyBps: 500}
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})

		Convey("with shares summing below 10000 is rejected", func() {
			c := valid.Copy()
			c.Splits[1].Shares = 3000
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})

		Convey("with shares summing above 10000 is rejected", func() {
			c := valid.Copy()
			c.Splits[1].Shares = 4001
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})

		Convey("with a zero share is rejected", func() {
			c := valid.Copy()
			c.Splits[0].Shares = 10000
			c.Splits[1].Shares = 0
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})

		Convey("with an empty payee account is rejected", func() {
			c := valid.Copy()
			c.Splits[0].Account = common.Address{}
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})

		Convey("with a repeated payee account is rejected", func() {
			c := valid.Copy()
			c.Splits[1].Account = c.Splits[0].Account
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})

		Convey("with a rate above the denominator is rejected", func() {
			c := valid.Copy()
			c.RoyaltyBps = 10001
			So(ErrInvalidConfig.Is(c.Validate()), ShouldBeTrue)
		})
	})
}

func TestConfigCopyIsDeep(t *testing.T) {
	orig := Config{
		Splits:     []Split{{Account: minter, Shares: 10000}},
		RoyaltyBps: 250,
	}
	cpy := orig.Copy()
	cpy.Splits[0].Shares = 1
	if orig.Splits[0].Shares != 10000 {
		t.Fatal("copy shares the splits slice")
	}
}
