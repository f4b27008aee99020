package places

import (
	"strings"
	"time"

	"tablescout/internal/domain/entity"
)

// Request and response shapes of the Places API (v1).

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type searchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes,omitempty"`
	MaxResultCount      int                 `json:"maxResultCount,omitempty"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
	RankPreference      string              `json:"rankPreference,omitempty"`
	LanguageCode        string              `json:"languageCode,omitempty"`
}

type searchNearbyResponse struct {
	Places []apiPlace `json:"places"`
}

type localizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type point struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type period struct {
	Open  point  `json:"open"`
	Close *point `json:"close,omitempty"`
}

type openingHours struct {
	Periods             []period `json:"periods,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

type authorAttribution struct {
	DisplayName string `json:"displayName"`
}

type apiPhoto struct {
	Name               string              `json:"name"`
	WidthPx            int                 `json:"widthPx"`
	HeightPx           int                 `json:"heightPx"`
	AuthorAttributions []authorAttribution `json:"authorAttributions,omitempty"`
}

type apiReview struct {
	Rating            float64           `json:"rating"`
	Text              localizedText     `json:"text"`
	AuthorAttribution authorAttribution `json:"authorAttribution"`
	PublishTime       time.Time         `json:"publishTime"`
}

type apiPlace struct {
	ID                  string         `json:"id"`
	DisplayName         localizedText  `json:"displayName"`
	FormattedAddress    string         `json:"formattedAddress"`
	Location            latLng         `json:"location"`
	Types               []string       `json:"types,omitempty"`
	Rating              float64        `json:"rating"`
	UserRatingCount     int            `json:"userRatingCount"`
	PriceLevel          string         `json:"priceLevel,omitempty"`
	RegularOpeningHours *openingHours  `json:"regularOpeningHours,omitempty"`
	Photos              []apiPhoto     `json:"photos,omitempty"`
	Reviews             []apiReview    `json:"reviews,omitempty"`
	EditorialSummary    *localizedText `json:"editorialSummary,omitempty"`
	WebsiteURI          string         `json:"websiteUri,omitempty"`
	NationalPhoneNumber string         `json:"nationalPhoneNumber,omitempty"`
}

var priceLevels = map[string]entity.PriceTier{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

func (h *openingHours) toDomain() *entity.OpeningHours {
	if h == nil {
		return nil
	}

	hours := &entity.OpeningHours{WeekdayText: h.WeekdayDescriptions}
	for _, p := range h.Periods {
		converted := entity.OpeningPeriod{
			Open: entity.TimeOfWeek{Day: p.Open.Day, Hour: p.Open.Hour, Minute: p.Open.Minute},
		}
		if p.Close != nil {
			converted.Close = &entity.TimeOfWeek{Day: p.Close.Day, Hour: p.Close.Hour, Minute: p.Close.Minute}
		}
		hours.Periods = append(hours.Periods, converted)
	}

	return hours
}

// toDomain converts an API place. The enrichment level follows the payload
// content, so a rich field mask that returns no reviews, hours or editorial
// text still yields a light record.
func (p *apiPlace) toDomain(fetchedAt time.Time, ttl time.Duration, rich bool) *entity.Place {
	summary := entity.Summary{
		Name:         p.DisplayName.Text,
		Address:      p.FormattedAddress,
		Location:     entity.Location{Lat: p.Location.Latitude, Lng: p.Location.Longitude},
		Categories:   p.Types,
		Rating:       p.Rating,
		RatingCount:  p.UserRatingCount,
		PriceTier:    priceLevels[p.PriceLevel],
		OpeningHours: p.RegularOpeningHours.toDomain(),
	}

	for _, photo := range p.Photos {
		attributions := make([]string, 0, len(photo.AuthorAttributions))
		for _, author := range photo.AuthorAttributions {
			attributions = append(attributions, author.DisplayName)
		}
		summary.Photos = append(summary.Photos, entity.Photo{
			Ref:         photo.Name,
			WidthPx:     photo.WidthPx,
			HeightPx:    photo.HeightPx,
			Attribution: strings.Join(attributions, ", "),
		})
	}

	details := entity.Details{
		Website: p.WebsiteURI,
		Phone:   p.NationalPhoneNumber,
	}
	if p.EditorialSummary != nil {
		details.Editorial = p.EditorialSummary.Text
	}
	for _, review := range p.Reviews {
		details.Reviews = append(details.Reviews, entity.Review{
			Author:      review.AuthorAttribution.DisplayName,
			Rating:      review.Rating,
			Text:        review.Text.Text,
			Language:    review.Text.LanguageCode,
			PublishedAt: review.PublishTime,
		})
	}
	if rich {
		details.Schedule = summary.OpeningHours
	}

	return entity.NewUpstreamPlace(p.ID, summary, details, fetchedAt, ttl)
}
