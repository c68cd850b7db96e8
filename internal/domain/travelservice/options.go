package travelservice

import (
	"math"
	"strings"
)

// Fixed form catalogs, in the order the form presents them.
var (
	ServiceTypes = []ServiceType{TypeTransport, TypeLodging, TypeAirfare, TypeInsurance}

	Statuses = []Status{StatusCanceled, StatusFulfilled, StatusOpen}

	Airlines = []string{
		"AIR FRANCE",
		"AMERICAN AIRLINES",
		"AZUL",
		"DELTA",
		"GOL",
		"LATAM AIRLINES",
		"UNITED AIRLINES",
	}

	CostCenters = []string{
		"N/A",
		"ADM-RATEIO",
		"FINANCEIRO",
		"G. GERAL",
		"VENDAS",
		"RH",
		"OPS-RATEIO",
	}

	Suppliers = []string{
		"LOCARIO",
		"RICKER",
		"MAX MOBILIDADE",
		"RIOMAR",
		"HOTEL ROYAL REGENCY",
		"IBIS BOTAFOGO",
		"COPASTUR",
		"ROYAL ATLANTICA MACAÉ",
		"FOUR POINTS",
		"MONREALE",
	}
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName maps 1..12 to the Portuguese month label stored alongside the number.
func MonthName(n int) (string, bool) {
	if n < 1 || n > 12 {
		return "", false
	}
	return monthNames[n-1], true
}

// MonthNumber is the inverse lookup. Matching ignores case.
func MonthNumber(name string) (int, bool) {
	for i, m := range monthNames {
		if strings.EqualFold(m, name) {
			return i + 1, true
		}
	}
	return 0, false
}

func ValidServiceType(t ServiceType) bool {
	for _, v := range ServiceTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Round2 rounds to two decimals, the precision of the cost columns.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
