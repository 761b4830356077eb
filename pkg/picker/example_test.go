package picker_test

import (
	"fmt"

	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/picker"
)

// This example shows how a step resolves on looping and bounded columns.
func ExampleCalcScrollIndex() {
	fmt.Println(picker.CalcScrollIndex(12, 11, true, 1))
	fmt.Println(picker.CalcScrollIndex(12, 11, false, 1))
	fmt.Println(picker.CalcScrollIndex(12, 0, true, -3))

	// Output:
	// 0
	// 11
	// 9
}

// This example shows the month column wrapping past December, which rolls
// the year forward.
func ExampleDatePicker_SnapshotJSON() {
	p := picker.New(picker.Config{
		Selected: calendar.Date{Year: 2000, Month: 12, Day: 31},
		CanLoop:  true,
		Locale:   "en",
	})
	defer p.Detach()
	p.SetTime(9, 30)
	p.OnChange(func(d calendar.Date) {
		fmt.Println("changed to", d)
	})

	// Select January without animating.
	p.Column(picker.ColumnMonth).ScrollToIndex(0, false)

	js, _ := p.SnapshotJSON(picker.NoStatus)
	fmt.Println(js)

	// Output:
	// changed to 2001-01-31
	// {"year":2001,"month":0,"day":31,"hour":9,"minute":30,"status":-1}
}
