package console

import (
	"fmt"
	"io"
	"time"

	"BikeshareExplorer/src/processor"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const noData = "No data available for the selected filters."

// Renderer 把统计结果打印到终端
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Summary 依次输出四组统计
func (r *Renderer) Summary(sel Selection, s processor.Summary) {
	r.println(DimStyle.Render(fmt.Sprintf("%s | month: %s | day: %s | %d trips",
		cases.Title(language.English).String(sel.City), sel.Month, sel.Day, s.Rows)))
	r.Time(s.Time)
	r.Station(s.Station)
	r.Duration(s.Duration)
	r.User(s.User)
}

func (r *Renderer) Time(t processor.TimeReport) {
	r.header("Calculating The Most Frequent Times of Travel...")
	if t.NoData {
		r.noData()
	} else {
		r.println("Most common month is : " + t.Month)
		r.println("\nMost common day of week is : " + t.Weekday)
		r.println("\nMost common start hour is at : " + t.Hour)
	}
	r.footer(t.Elapsed)
}

func (r *Renderer) Station(s processor.StationReport) {
	r.header("Calculating The Most Popular Stations and Trip...")
	if s.NoData {
		r.noData()
	} else {
		r.println("Most commonly used start station is : " + s.StartStation)
		r.println("\nMost commonly used end station is : " + s.EndStation)
		r.println("\nMost frequent combination of start station and end station trip is : " + s.Itinerary)
	}
	r.footer(s.Elapsed)
}

func (r *Renderer) Duration(d processor.DurationReport) {
	r.header("Calculating Trip Duration...")
	if d.NoData {
		r.noData()
	} else {
		r.println("Total travel time is : " + d.Total)
		r.println("\nMean travel time is : " + d.Mean)
	}
	r.footer(d.Elapsed)
}

func (r *Renderer) User(u processor.UserReport) {
	r.header("Calculating User Stats...")
	if u.NoData {
		r.noData()
		r.footer(u.Elapsed)
		return
	}

	r.println("***Count for each user type*** :")
	r.counts(u.UserTypes)

	if u.Schema.HasGender {
		r.println("\n***Count for each gender*** :")
		r.counts(u.Genders)
	}

	if u.Schema.HasBirthYear {
		if u.BirthYear == nil {
			r.println("\n" + NoticeStyle.Render("No birth year data available."))
		} else {
			r.println(fmt.Sprintf("\nEarliest year of birth is : %d", u.BirthYear.Earliest))
			r.println(fmt.Sprintf("\nMost recent year of birth is : %d", u.BirthYear.MostRecent))
			r.println(fmt.Sprintf("\nMost common year of birth is : %d", u.BirthYear.MostCommon))
		}
	}
	r.footer(u.Elapsed)
}

// Error 会话失败时的提示
func (r *Renderer) Error(err error) {
	r.println(ErrorStyle.Render("Error: " + err.Error()))
}

func (r *Renderer) counts(cc []processor.CategoryCount) {
	width := 0
	for _, c := range cc {
		if len(c.Value) > width {
			width = len(c.Value)
		}
	}
	for _, c := range cc {
		r.println(fmt.Sprintf("%-*s  %d", width, c.Value, c.Count))
	}
}

func (r *Renderer) header(title string) {
	r.println("\n" + HeaderStyle.Render(title) + "\n")
}

func (r *Renderer) footer(elapsed time.Duration) {
	r.println(DimStyle.Render(fmt.Sprintf("\nThis took %v seconds.", elapsed.Seconds())))
	r.println(Divider)
}

func (r *Renderer) noData() {
	r.println(NoticeStyle.Render(noData))
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.out, s)
}
