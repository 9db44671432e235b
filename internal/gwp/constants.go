package gwp

// GWP-100 coefficients by IPCC assessment report edition.
// Source: IPCC AR2 (SAR), AR4, AR5, and AR6 WG1 Chapter 7 Table 7.15.
//
// CO2 is the reference gas and always carries a coefficient of 1. Scope 1/2/3
// quantities are already CO2e, so they also carry a unit coefficient in every
// scenario.
const (
	// SARCH4Factor is the SAR (1995) GWP-100 for methane.
	SARCH4Factor = 21.0
	// SARN2OFactor is the SAR (1995) GWP-100 for nitrous oxide.
	SARN2OFactor = 310.0

	// AR4CH4Factor is the AR4 (2007) GWP-100 for methane.
	AR4CH4Factor = 25.0
	// AR4N2OFactor is the AR4 (2007) GWP-100 for nitrous oxide.
	AR4N2OFactor = 298.0

	// AR5CH4Factor is the AR5 (2013) GWP-100 for methane.
	AR5CH4Factor = 28.0
	// AR5N2OFactor is the AR5 (2013) GWP-100 for nitrous oxide.
	AR5N2OFactor = 265.0

	// AR6CH4Factor is the AR6 (2021) GWP-100 for fossil methane.
	AR6CH4Factor = 27.9
	// AR6N2OFactor is the AR6 (2021) GWP-100 for nitrous oxide.
	AR6N2OFactor = 273.0

	// CO2Factor is the reference coefficient for CO2 in every scenario.
	CO2Factor = 1.0

	// ScopeFactor applies to Scope 1/2/3 quantities, which are already CO2e.
	ScopeFactor = 1.0
)

// DefaultScenarioName is the scenario used when the user does not pick one.
const DefaultScenarioName = "AR6"
