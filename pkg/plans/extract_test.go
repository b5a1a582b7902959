package plans

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtract(t *testing.T) {
	Convey("Given an extractor with the default selectors", t, func() {
		extractor := NewExtractor(DefaultSelectors())

		Convey("When the document matches nothing", func() {
			lines := extractor.Extract("<html><body><p>empty</p></body></html>")

			Convey("Then only the three headers are returned", func() {
				So(lines, ShouldResemble, []string{
					OverviewHeader, PlanDataHeader, TravelPlanHeader,
				})
			})
		})

		Convey("When the input is not HTML at all", func() {
			lines := extractor.Extract("not < really > html & stuff")

			Convey("Then it still degrades to the headers", func() {
				So(lines, ShouldResemble, []string{
					OverviewHeader, PlanDataHeader, TravelPlanHeader,
				})
			})
		})

		Convey("When there is one summary row", func() {
			lines := extractor.Extract(`<table><tr class="PlanSummaryTable__Row">
				<th class="PlanSummaryTable__Title">日程</th>
				<td class="PlanSummaryTable__Text">2日</td>
			</tr></table>`)

			Convey("Then its line follows the overview header", func() {
				So(lines[0], ShouldEqual, OverviewHeader)
				So(lines[1], ShouldEqual, "日程: 2日")
				So(lines[2], ShouldEqual, PlanDataHeader)
			})
		})

		Convey("When a summary row has an empty title", func() {
			lines := extractor.Extract(`<table><tr class="PlanSummaryTable__Row">
				<th class="PlanSummaryTable__Title">   </th>
				<td class="PlanSummaryTable__Text">2日</td>
			</tr></table>`)

			Convey("Then the row is skipped entirely", func() {
				So(lines, ShouldHaveLength, 3)
				So(strings.Join(lines, "\n"), ShouldNotContainSubstring, "2日")
			})
		})

		Convey("When a summary row has no text", func() {
			lines := extractor.Extract(`<div class="PlanSummaryTable__Row">
				<span class="PlanSummaryTable__Title">山域</span>
			</div>`)

			Convey("Then the line is emitted with an empty value", func() {
				So(lines[1], ShouldEqual, "山域: ")
			})
		})

		Convey("When difficulty and pace are present", func() {
			lines := extractor.Extract(`
				<h3 class="CourseDifficulty__Heading">コース難易度</h3>
				<span class="CourseDifficulty__Level">ふつう</span>
				<span class="CourseDifficulty__Value">3</span>
				<h3 class="CoursePace__Heading">ペース</h3>
				<span class="CoursePace__Label">標準</span>
				<span class="CoursePace__Value">100</span>`)

			Convey("Then both are formatted under plan data", func() {
				So(lines, ShouldResemble, []string{
					OverviewHeader,
					PlanDataHeader,
					"コース難易度: 3 (ふつう)",
					"ペース: 100% (標準)",
					TravelPlanHeader,
				})
			})
		})

		Convey("When a metric has no label", func() {
			lines := extractor.Extract(`<ul>
				<li class="PlanDataList__Item"><span class="PlanDataList__Score">5</span></li>
				<li class="PlanDataList__Item"><span class="PlanDataList__Label">距離</span><span class="PlanDataList__Score">8km</span></li>
			</ul>`)

			Convey("Then only the labelled metric is emitted", func() {
				So(lines[2], ShouldEqual, "距離: 8km")
				So(lines, ShouldHaveLength, 4)
			})
		})

		Convey("When there is one checkpoint group with two items", func() {
			lines := extractor.Extract(`<div class="CheckpointGroup">
				<h4 class="CheckpointGroup__Heading">8月1日</h4>
				<span class="CheckpointGroup__SunriseSunset">05:00/18:30</span>
				<div class="Checkpoint">
					<span class="Checkpoint__Time">06:00</span>
					<span class="Checkpoint__Name">登山口</span>
				</div>
				<div class="Checkpoint">
					<span class="Checkpoint__Time">12:00</span>
					<span class="Checkpoint__Name">山頂</span>
					<span class="Checkpoint__Lodging">山小屋</span>
				</div>
			</div>`)

			Convey("Then the group is one line with the items newline joined", func() {
				So(lines[len(lines)-1], ShouldEqual, "8月1日: 05:00/18:30\n06:00 登山口 \n12:00 山頂 山小屋")
			})
		})

		Convey("When a checkpoint group has no date", func() {
			lines := extractor.Extract(`<div class="CheckpointGroup">
				<span class="CheckpointGroup__SunriseSunset">05:00/18:30</span>
			</div>`)

			Convey("Then the group line is still emitted", func() {
				So(lines[len(lines)-1], ShouldEqual, ": 05:00/18:30\n")
			})
		})
	})
}

func TestReport(t *testing.T) {
	Convey("Given a saved printing page", t, func() {
		html, err := os.ReadFile("testdata/printing.html")
		So(err, ShouldBeNil)

		report := NewExtractor(DefaultSelectors()).Report(string(html))

		Convey("Then every section is rendered in order", func() {
			So(report, ShouldEqual, strings.Join([]string{
				"概要",
				"日程: 2日",
				"山域: 北アルプス",
				"計画データ",
				"距離: 21.3km",
				"累積標高: 2,210m",
				"コース難易度: 4 (難しい)",
				"コース定数: 110% (ふつう)",
				"移動計画",
				"8月1日: 05:00/18:30\n06:00 登山口 \n12:00 山頂 山小屋",
				"8月2日: 05:01/18:29\n05:30 山小屋 ",
			}, "\n"))
		})
	})

	Convey("Given custom selectors", t, func() {
		sel := DefaultSelectors()
		sel.Summary = SummarySelectors{Row: "tr", Title: "th", Text: "td"}

		report := NewExtractor(sel).Report(`<table><tr><th>日程</th><td>日帰り</td></tr></table>`)

		Convey("Then the overrides are used", func() {
			So(report, ShouldStartWith, "概要\n日程: 日帰り\n計画データ")
		})
	})
}
