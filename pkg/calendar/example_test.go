package calendar_test

import (
	"fmt"

	"github.com/go-drift/picker/pkg/calendar"
)

// This example converts a solar date that falls in a leap month and back.
func ExampleSolarToLunar() {
	l := calendar.SolarToLunar(calendar.Date{Year: 2020, Month: 5, Day: 23})
	fmt.Println(l)
	fmt.Println(calendar.LunarToSolar(l))

	// Output:
	// 2020-L04-01
	// 2020-05-23
}

// This example shows the leap month precondition of LunarMaxDay.
func ExampleLunarMaxDay() {
	if _, err := calendar.LunarMaxDay(2021, 4, true); err != nil {
		fmt.Println(err)
	}

	// Output:
	// calendar.LunarMaxDay [calendar]: calendar: no such leap month: 2021/4
}
