package card

import "strconv"

// TicksPerMinute is the number of 100ns ticks in one minute.
const TicksPerMinute int64 = 600_000_000

// TitleLabel shows the title verbatim.
func TitleLabel(text string) Label {
	return Label{Text: text, Visible: true}
}

// SummaryLabel shows the summary verbatim.
func SummaryLabel(text string) Label {
	return Label{Text: text, Visible: true}
}

// CommunityRatingLabel is visible for a positive rating, formatted to one decimal.
func CommunityRatingLabel(rating *float64, f NumberFormatter) Label {
	if rating == nil || !(*rating > 0) {
		return Label{}
	}
	return Label{Text: f.FormatOneDecimal(*rating), Visible: true}
}

// CriticRatingLabel is visible for a positive rating, formatted to one decimal
// with a trailing percent sign.
func CriticRatingLabel(rating *float64, f NumberFormatter) Label {
	if rating == nil || !(*rating > 0) {
		return Label{}
	}
	return Label{Text: f.FormatOneDecimal(*rating) + "%", Visible: true}
}

// YearLabel is visible whenever a year is present.
func YearLabel(year *int) Label {
	if year == nil {
		return Label{}
	}
	return Label{Text: strconv.Itoa(*year), Visible: true}
}

// DurationLabel is visible for a positive runtime.
func DurationLabel(ticks *int64) Label {
	if ticks == nil || *ticks <= 0 {
		return Label{}
	}
	return Label{Text: FormatDuration(*ticks), Visible: true}
}

// FormatDuration renders a runtime in ticks as "1h 30m" or "30m".
// Partial minutes are truncated.
func FormatDuration(ticks int64) string {
	totalMinutes := ticks / TicksPerMinute
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours > 0 {
		return strconv.FormatInt(hours, 10) + "h " + strconv.FormatInt(minutes, 10) + "m"
	}
	return strconv.FormatInt(minutes, 10) + "m"
}

// ResumeProgress shows a partial-progress bar. Not started (0) and finished
// (>= 100) items show none.
func ResumeProgress(percent int) ProgressBar {
	if percent <= 0 || percent >= 100 {
		return ProgressBar{}
	}
	return ProgressBar{Value: percent, Visible: true}
}

// WatchedState shows a checkmark for watched items, otherwise the unwatched
// count when there is one.
func WatchedState(watched bool, unwatchedCount int) WatchedIndicator {
	switch {
	case watched:
		return WatchedIndicator{Visible: true, CheckVisible: true}
	case unwatchedCount > 0:
		return WatchedIndicator{
			Visible:      true,
			CountVisible: true,
			Count:        strconv.Itoa(unwatchedCount),
		}
	default:
		return WatchedIndicator{}
	}
}

// SetTitle sets the title text.
func (c *Card) SetTitle(text string) {
	c.title = TitleLabel(text)
}

// SetSummary sets the summary text.
func (c *Card) SetSummary(text string) {
	c.summary = SummaryLabel(text)
}

// SetCommunityRating sets the community rating badge; nil or <= 0 hides it.
func (c *Card) SetCommunityRating(rating *float64) {
	c.communityRating = CommunityRatingLabel(rating, c.format)
}

// SetCriticRating sets the critic rating badge; nil or <= 0 hides it.
func (c *Card) SetCriticRating(rating *float64) {
	c.criticRating = CriticRatingLabel(rating, c.format)
}

// SetYear sets the production year badge; nil hides it.
func (c *Card) SetYear(year *int) {
	c.year = YearLabel(year)
}

// SetDuration sets the runtime badge from ticks; nil or <= 0 hides it.
func (c *Card) SetDuration(ticks *int64) {
	c.duration = DurationLabel(ticks)
}

// SetResumeProgress sets the resume bar. The bar keeps spanning the image width.
func (c *Card) SetResumeProgress(percent int) {
	width := c.progress.Width
	c.progress = ResumeProgress(percent)
	c.progress.Width = width
}

// SetWatchedIndicator sets the watched checkmark or unwatched count.
func (c *Card) SetWatchedIndicator(watched bool, unwatchedCount int) {
	c.watched = WatchedState(watched, unwatchedCount)
}
