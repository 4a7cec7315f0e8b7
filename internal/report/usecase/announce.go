package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/discord"
	"citron-srv/pkg/util"
)

func (uc *implUseCase) Announce(ctx context.Context, ip report.JobInput) (report.JobOutput, error) {
	now := uc.now().UTC()
	day, err := resolveDay(ip.Date, now)
	if err != nil {
		return report.JobOutput{}, err
	}
	wikis, err := uc.selectWikis(ip.WikiID)
	if err != nil {
		return report.JobOutput{}, err
	}

	results := uc.forEachWiki(ctx, jobAnnounce, wikis, func(ctx context.Context, w model.Wiki) (string, string, error) {
		return uc.announceWiki(ctx, w, day, now)
	})

	return report.JobOutput{Date: util.FormatDate(day), Results: results}, nil
}

func (uc *implUseCase) announceWiki(ctx context.Context, w model.Wiki, day, now time.Time) (string, string, error) {
	if w.AnnouncementPage == "" {
		return report.StatusSkipped, "no announcement page", nil
	}

	from, to := util.DayRangeUTC(day)
	if to.After(now) {
		to = now
	}
	has, err := uc.detectionUC.HasDetections(ctx, detection.HasDetectionsInput{
		WikiID: w.ID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return "", "", err
	}
	if !has {
		return report.StatusSkipped, "no detections", nil
	}

	date := util.FormatDate(day)
	marker := fmt.Sprintf(markerFormat, date)

	page, err := uc.wikis.REST(w.ServerName).GetPage(ctx, w.AnnouncementPage)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Announce: Failed to read %s on %s: %v", w.AnnouncementPage, w.ID, err)
		return report.StatusSkipped, "announcement page unavailable", nil
	}
	if strings.Contains(page.Source, marker) {
		return report.StatusSkipped, "already announced", nil
	}

	action, err := uc.wikis.Action(ctx, w.ServerName)
	if err != nil {
		return "", "", err
	}
	if err := action.Edit(ctx, map[string]string{
		"title":        w.AnnouncementPage,
		"text":         marker + "\n~~~~",
		"summary":      fmt.Sprintf(announceSummaryFormat, date),
		"bot":          "true",
		"section":      "new",
		"sectiontitle": sectionTitle(w.AnnouncementSection, day),
	}); err != nil {
		return "", "", err
	}
	if err := action.Purge(ctx, w.AnnouncementPage); err != nil {
		uc.l.Warnf(ctx, "report.usecase.Announce: Failed to purge %s on %s: %v", w.AnnouncementPage, w.ID, err)
	}

	uc.notifyAnnounced(ctx, w, date)

	uc.l.Infof(ctx, "report.usecase.Announce: Announced report %s on %s", date, w.ID)
	return report.StatusAnnounced, "", nil
}

func (uc *implUseCase) notifyAnnounced(ctx context.Context, w model.Wiki, date string) {
	if uc.discord == nil {
		return
	}
	err := uc.discord.SendEmbed(ctx, discord.MessageOptions{
		Type:        discord.MessageTypeInfo,
		Title:       "Citron/Spam report announced",
		Description: uc.pageTitle(date),
		URL:         pageURL(w.ServerName, w.AnnouncementPage),
		Fields: []discord.EmbedField{
			{Name: "Wiki", Value: w.ID, Inline: true},
			{Name: "Date", Value: date, Inline: true},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.Announce: %v", err)
	}
}

func pageURL(serverName, title string) string {
	return "https://" + serverName + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

// sectionTitle fills the {day}, {month} and {year} placeholders without
// zero padding.
func sectionTitle(format string, day time.Time) string {
	return strings.NewReplacer(
		"{day}", strconv.Itoa(day.Day()),
		"{month}", strconv.Itoa(int(day.Month())),
		"{year}", strconv.Itoa(day.Year()),
	).Replace(format)
}
