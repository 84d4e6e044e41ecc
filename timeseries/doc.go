// Package timeseries provides the owned series buffers used across gotrend.
//
// Two orderings are in play and each type states which one it uses:
//
//   - Series stores values chronologically: Values[0] is the oldest
//     observation, Values[Len()-1] the latest. Every function in normalize
//     and stats expects this order.
//   - Bars is addressed most-recent-first, the way charting platforms index
//     price bars: At(0) is the current bar, At(1) the previous one.
//
// # Creating a Series
//
//	series := timeseries.New([]float64{100, 102, 105, 103, 108, 110})
//	fmt.Println(series.Last(), series.Mean(), series.Std())
//
// # Bars
//
//	bars := series.Bars()
//	bars.At(0)        // 110
//	bars.At(1)        // 108
//	bars.Window(3)    // [103 108 110], oldest first
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSVColumn("prices.csv", "close")
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.Descending = true // file lists newest rows first
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// WriteCSV emits a series as date,value rows.
package timeseries
