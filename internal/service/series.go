package service

import (
	"sort"

	"github.com/guttosm/segment-insights/internal/domain/dto"
	"github.com/guttosm/segment-insights/internal/trino"
)

// DensifyMonthly turns sparse (month, segment, revenue) rows into aligned
// per-segment series. The engine only emits rows for combinations with
// activity; the chart layer needs every dataset to cover the same sorted
// month labels, so missing months are filled with 0.0. Segments keep their
// first-appearance order, which makes the output deterministic for rows
// already sorted by month and segment.
func DensifyMonthly(rows []trino.Row) dto.MonthlySeries {
	monthSet := make(map[string]struct{})
	bySegment := make(map[string]map[string]float64)
	segmentOrder := make([]string, 0)

	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		month := monthLabel(row[0])
		segment := toString(row[1])
		if month == "" || segment == "" {
			continue
		}

		monthSet[month] = struct{}{}
		if _, seen := bySegment[segment]; !seen {
			bySegment[segment] = make(map[string]float64)
			segmentOrder = append(segmentOrder, segment)
		}
		bySegment[segment][month] = toFloat64(row[2])
	}

	months := make([]string, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Strings(months)

	datasets := make([]dto.Dataset, 0, len(segmentOrder))
	for _, segment := range segmentOrder {
		data := make([]float64, len(months))
		for i, month := range months {
			data[i] = bySegment[segment][month]
		}
		datasets = append(datasets, dto.Dataset{Label: segment, Data: data})
	}

	return dto.MonthlySeries{Labels: months, Datasets: datasets}
}
