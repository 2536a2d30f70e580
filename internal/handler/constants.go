package handler

import "time"

// TimeFormat renders every timestamp the API emits, including the
// published_at an article acquires on first publish.
const TimeFormat = time.RFC3339
