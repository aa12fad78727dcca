package auth

import "teamhub/internal/model"

// Action identifies a policy-gated operation on a resource.
type Action string

const (
	ActionUsersRead  Action = "users:read"
	ActionUsersWrite Action = "users:write"

	ActionCalendarRead  Action = "calendar:read"
	ActionCalendarWrite Action = "calendar:write"

	ActionNoticesRead      Action = "notices:read"
	ActionNoticesWrite     Action = "notices:write"
	ActionNoticeTypesWrite Action = "notice-types:write"
	ActionNoticeTagsWrite  Action = "notice-tags:write"

	ActionChatRead          Action = "chat:read"
	ActionChatWrite         Action = "chat:write"
	ActionChatSettingsWrite Action = "chat-settings:write"

	ActionTrackingRead  Action = "tracking:read"
	ActionTrackingWrite Action = "tracking:write"

	ActionSettingsRead  Action = "settings:read"
	ActionSettingsWrite Action = "settings:write"
)

// policy is the static table mapping each action to its allowed role set.
// Role escalation to admin is additionally restricted by the user service.
var policy = map[Action][]model.Role{
	ActionUsersRead:  {model.RoleAdmin, model.RoleLider},
	ActionUsersWrite: {model.RoleAdmin, model.RoleLider},

	ActionCalendarRead:  {model.RoleAdmin, model.RoleLider, model.RoleColaborador},
	ActionCalendarWrite: {model.RoleAdmin, model.RoleLider},

	ActionNoticesRead:      {model.RoleAdmin, model.RoleLider, model.RoleColaborador},
	ActionNoticesWrite:     {model.RoleAdmin, model.RoleLider},
	ActionNoticeTypesWrite: {model.RoleAdmin},
	ActionNoticeTagsWrite:  {model.RoleAdmin},

	ActionChatRead:          {model.RoleAdmin, model.RoleLider, model.RoleColaborador},
	ActionChatWrite:         {model.RoleAdmin, model.RoleLider, model.RoleColaborador},
	ActionChatSettingsWrite: {model.RoleAdmin, model.RoleLider},

	ActionTrackingRead:  {model.RoleAdmin, model.RoleLider},
	ActionTrackingWrite: {model.RoleAdmin, model.RoleLider},

	ActionSettingsRead:  {model.RoleAdmin, model.RoleLider, model.RoleColaborador},
	ActionSettingsWrite: {model.RoleAdmin, model.RoleLider},
}

// Authorize reports whether role may perform action. Unknown actions and
// unknown roles are always denied.
func Authorize(role model.Role, action Action) bool {
	allowed, ok := policy[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
