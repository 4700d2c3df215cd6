package bmsconv

import "fmt"

// SignalName identifies a BMS signal (e.g. "system_voltage")
type SignalName string

const (
	SignalSystemVoltage            SignalName = "system_voltage"
	SignalSystemCurrent            SignalName = "system_current"
	SignalSystemSOC                SignalName = "system_soc"
	SignalChargeCurrentLimit       SignalName = "charge_current_limit"
	SignalDischargeCurrentLimit    SignalName = "discharge_current_limit"
	SignalCellMaxTemp              SignalName = "cell_max_temp"
	SignalCellMinTemp              SignalName = "cell_min_temp"
	SignalCellAvgTemp              SignalName = "cell_avg_temp"
	SignalMaxChargeCurrent         SignalName = "max_charge_current"
	SignalChargeMaxCellSpecCurrent SignalName = "charge_max_cell_spec_current"
	SignalAccumulatedCharge        SignalName = "accumulated_charge"
	SignalAccumulatedDischarge     SignalName = "accumulated_discharge"
	SignalMasterTimer              SignalName = "master_timer"
	SignalStateOfHealth            SignalName = "state_of_health"
)

// RawWidth is the bit width of a raw (on the wire) unsigned value
type RawWidth uint8

const (
	Width8  RawWidth = 8
	Width16 RawWidth = 16
	Width32 RawWidth = 32
)

// Valid reports whether w is one of the supported raw widths
func (w RawWidth) Valid() bool {
	return w == Width8 || w == Width16 || w == Width32
}

// Max returns the largest raw value representable in w bits
func (w RawWidth) Max() uint64 {
	return 1<<uint64(w) - 1
}

func (w RawWidth) String() string {
	return fmt.Sprintf("uint%d", uint8(w))
}

// scale/offset pairs shared by several signals
const (
	deciFactor    = 0.1
	currentOffset = -500
	tempOffset    = -40
)

var (
	systemVoltage            = Rule{Name: SignalSystemVoltage, Factor: deciFactor, Offset: 0, Width: Width16}
	systemCurrent            = Rule{Name: SignalSystemCurrent, Factor: deciFactor, Offset: currentOffset, Width: Width16}
	systemSOC                = Rule{Name: SignalSystemSOC, Factor: 0.4, Offset: 0, Width: Width8}
	chargeCurrentLimit       = Rule{Name: SignalChargeCurrentLimit, Factor: deciFactor, Offset: currentOffset, Width: Width16}
	dischargeCurrentLimit    = Rule{Name: SignalDischargeCurrentLimit, Factor: deciFactor, Offset: currentOffset, Width: Width16}
	cellMaxTemp              = Rule{Name: SignalCellMaxTemp, Factor: 1, Offset: tempOffset, Width: Width8}
	cellMinTemp              = Rule{Name: SignalCellMinTemp, Factor: 1, Offset: tempOffset, Width: Width8}
	cellAvgTemp              = Rule{Name: SignalCellAvgTemp, Factor: 1, Offset: tempOffset, Width: Width8}
	maxChargeCurrent         = Rule{Name: SignalMaxChargeCurrent, Factor: deciFactor, Offset: currentOffset, Width: Width16}
	chargeMaxCellSpecCurrent = Rule{Name: SignalChargeMaxCellSpecCurrent, Factor: deciFactor, Offset: currentOffset, Width: Width16}
	accumulatedCharge        = Rule{Name: SignalAccumulatedCharge, Factor: 0.5, Offset: 0, Width: Width16}
	accumulatedDischarge     = Rule{Name: SignalAccumulatedDischarge, Factor: 0.5, Offset: 0, Width: Width16}
	masterTimer              = Rule{Name: SignalMasterTimer, Factor: deciFactor, Offset: 0, Width: Width32}
	stateOfHealth            = Rule{Name: SignalStateOfHealth, Factor: deciFactor, Offset: 0, Width: Width16}
)

var builtinRules map[SignalName]Rule

func init() {
	builtinRules = map[SignalName]Rule{}
	for _, r := range []Rule{
		systemVoltage,
		systemCurrent,
		systemSOC,
		chargeCurrentLimit,
		dischargeCurrentLimit,
		cellMaxTemp,
		cellMinTemp,
		cellAvgTemp,
		maxChargeCurrent,
		chargeMaxCellSpecCurrent,
		accumulatedCharge,
		accumulatedDischarge,
		masterTimer,
		stateOfHealth,
	} {
		builtinRules[r.Name] = r
	}
}

// BuiltinRule returns the compiled-in rule for a signal
//
// Rule is a value type, so the returned copy can't alter the built-in table
func BuiltinRule(name SignalName) (Rule, bool) {
	r, ok := builtinRules[name]
	return r, ok
}
