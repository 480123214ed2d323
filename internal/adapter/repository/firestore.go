package repository

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection         = "users"
	coursesCollection       = "courses"
	reviewsCollection       = "reviews"
	enrollmentsCollection   = "enrollments"
	bookingsCollection      = "bookings"
	submissionsCollection   = "submissions"
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
)

// collect drains iter into a slice, filling the id from the document ref.
func collect[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]*T, error) {
	defer iter.Stop()

	items := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		item := new(T)
		if err := doc.DataTo(item); err != nil {
			return nil, err
		}
		setID(item, doc.Ref.ID)
		items = append(items, item)
	}
	return items, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
