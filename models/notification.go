// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationItem is an in-app notification entry.
type NotificationItem struct {
	// ID is a time-ordered identifier (UUIDv7).
	ID        string    `json:"id"`
	IconName  string    `json:"iconName"`
	IconColor string    `json:"iconColor"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Time      time.Time `json:"time"`
	IsRead    bool      `json:"isRead"`
}

// NewNotification is the caller-supplied part of a notification. ID, Time
// and IsRead are filled in by the notification service.
type NewNotification struct {
	IconName  string
	IconColor string
	Title     string
	Detail    string
}
