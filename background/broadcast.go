package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/utils"
)

const (
	BROADCAST_NEW_REQUEST    = "8f1c2aa4-91d5-4b6e-9a41-2c3f0f6de214"
	NOTIFY_HANDSHAKE_CREATED = "c47a9be2-6c05-47d2-8b17-55e40fbd6a9e"
	NOTIFY_REQUEST_RESOLVED  = "12de60a1-3a87-4a58-90d2-fd0288b2a0f3"
)

// DefaultBroadcastRadiusKm bounds the cohort of a new-request broadcast.
const DefaultBroadcastRadiusKm = 20.0

// BroadcastNewRequest sends notifications to accounts whose last known
// position is near a freshly opened request.
func (m *BackgroundManager) BroadcastNewRequest(requestID string, latitude, longitude float64) error {
	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return err
	}

	request, err := m.mongo.GetHelpRequest(id)
	if err != nil {
		return err
	}

	accountNumbers, err := m.mongo.ListNearbyAccounts(latitude, longitude, DefaultBroadcastRadiusKm)
	if err != nil {
		return err
	}

	// the requester already knows
	receivers := make([]string, 0, len(accountNumbers))
	for _, a := range accountNumbers {
		if a != request.Requester {
			receivers = append(receivers, a)
		}
	}

	if len(receivers) == 0 {
		return nil
	}

	return m.NotifyAccountsByTemplate(receivers, BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        requestID,
		"category":          request.Category,
		"blood_group":       request.BloodGroup,
	})
}

// NotifyHandshakeCreated tells an organization a requester reached out.
func (m *BackgroundManager) NotifyHandshakeCreated(requestID, orgID string) error {
	return m.NotifyAccountsByTemplate([]string{orgID}, NOTIFY_HANDSHAKE_CREATED, map[string]interface{}{
		"notification_type": "NOTIFY_HANDSHAKE_CREATED",
		"request_id":        requestID,
	})
}

// NotifyRequestResolved thanks the organizations that responded once a
// case closes.
func (m *BackgroundManager) NotifyRequestResolved(requestID string) error {
	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return err
	}

	handshakes, err := m.mongo.ListHandshakesByRequest(id)
	if err != nil {
		return err
	}

	receivers := make([]string, 0, len(handshakes))
	for _, h := range handshakes {
		receivers = append(receivers, h.OrgID)
	}

	if len(receivers) == 0 {
		return nil
	}

	return m.NotifyAccountsByTemplate(receivers, NOTIFY_REQUEST_RESOLVED, map[string]interface{}{
		"notification_type": "NOTIFY_REQUEST_RESOLVED",
		"request_id":        requestID,
	})
}

// BroadcastNewCamp sends a localized text notification to accounts near
// a newly published donation camp.
func (m *BackgroundManager) BroadcastNewCamp(campID string) error {
	id, err := primitive.ObjectIDFromHex(campID)
	if err != nil {
		return err
	}

	camp, err := m.mongo.GetCamp(id)
	if err != nil {
		return err
	}

	loc := camp.Location.Location()
	if loc == nil {
		return fmt.Errorf("camp %s has no location", campID)
	}

	accountNumbers, err := m.mongo.ListNearbyAccounts(loc.Latitude, loc.Longitude, camp.DiscoveryRadiusKm())
	if err != nil {
		return err
	}

	headings, contents, err := CampAnnouncementMessage(camp)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"notification_type": "BROADCAST_NEW_CAMP",
		"camp_id":           campID,
	}

	for _, a := range accountNumbers {
		if a == camp.CreatedBy {
			continue
		}
		if err := m.NotifyAccountByText(a, headings, contents, data); err != nil {
			return err
		}
	}

	return nil
}

// CampAnnouncementMessage renders the camp announcement in every
// supported language.
func CampAnnouncementMessage(camp *schema.DonationCamp) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for oneSignalCode, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.camp_announcement.heading",
		})
		if err != nil {
			return nil, nil, err
		}

		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.camp_announcement.content",
			TemplateData: map[string]interface{}{
				"Title": camp.Title,
				"Date":  camp.Date,
				"Place": camp.LocationText,
			},
		})
		if err != nil {
			return nil, nil, err
		}

		headings[oneSignalCode] = heading
		contents[oneSignalCode] = content
	}

	return headings, contents, nil
}
