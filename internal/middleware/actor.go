package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ActorIDHeader carries the calling account's id. Upstream auth is
	// expected to have verified it; this service only resolves and
	// authorizes the account it names.
	ActorIDHeader = "X-Account-ID"
	// ActorIDKey is the context key holding the actor id.
	ActorIDKey = "actor_id"
)

// Actor extracts the acting account id from the X-Account-ID header and
// stores it in the gin context. Requests without the header, or with a
// value that is not a UUID, are rejected as unauthenticated before
// reaching any handler.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorIDHeader)
		if actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + ActorIDHeader + " header",
			})
			return
		}
		if _, err := uuid.Parse(actorID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": ActorIDHeader + " must be a valid UUID",
			})
			return
		}

		c.Set(ActorIDKey, actorID)
		c.Next()
	}
}

// GetActorID retrieves the actor id from the gin context.
func GetActorID(c *gin.Context) string {
	if actorID, exists := c.Get(ActorIDKey); exists {
		if id, ok := actorID.(string); ok {
			return id
		}
	}
	return ""
}
