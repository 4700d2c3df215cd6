package bmsconv

// SystemVoltageConv converts system voltage (factor 0.1, offset 0) to its uint16 raw value
func SystemVoltageConv(v uint16) uint16 {
	return convert(systemVoltage, v)
}

// SystemCurrentConv converts system current (factor 0.1, offset -500) to its uint16 raw value
func SystemCurrentConv(v uint16) uint16 {
	return convert(systemCurrent, v)
}

// SystemSOCConv converts state of charge (factor 0.4, offset 0) to its uint8 raw value
func SystemSOCConv(v uint8) uint8 {
	return convert(systemSOC, v)
}

func ChargeCurrentLimitConv(v uint16) uint16 {
	return convert(chargeCurrentLimit, v)
}

func DischargeCurrentLimitConv(v uint16) uint16 {
	return convert(dischargeCurrentLimit, v)
}

// CellMaxTempConv converts a cell temperature (factor 1, offset -40) to its uint8 raw value
func CellMaxTempConv(v uint8) uint8 {
	return convert(cellMaxTemp, v)
}

func CellMinTempConv(v uint8) uint8 {
	return convert(cellMinTemp, v)
}

func CellAvgTempConv(v uint8) uint8 {
	return convert(cellAvgTemp, v)
}

func MaxChargeCurrentConv(v uint16) uint16 {
	return convert(maxChargeCurrent, v)
}

// ChargeMaxCellSpecCurrentConv converts the cell spec max charge current (factor 0.1, offset -500)
func ChargeMaxCellSpecCurrentConv(v uint16) uint16 {
	return convert(chargeMaxCellSpecCurrent, v)
}

// AccumulatedChargeConv converts accumulated charge (factor 0.5, offset 0) to its uint16 raw value
func AccumulatedChargeConv(v uint16) uint16 {
	return convert(accumulatedCharge, v)
}

func AccumulatedDischargeConv(v uint16) uint16 {
	return convert(accumulatedDischarge, v)
}

// MasterTimerConv converts the master timer (factor 0.1, offset 0) to its uint32 raw value
func MasterTimerConv(v uint32) uint32 {
	return convert(masterTimer, v)
}

// StateOfHealthConv converts state of health (factor 0.1, offset 0) to its uint16 raw value
func StateOfHealthConv(v uint16) uint16 {
	return convert(stateOfHealth, v)
}
