package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradeport/pkg/errors"
	"tradeport/pkg/logger"
)

// statusLedger is the shared conditional-update primitive behind every
// workflow repository: "move this record to the next status, but only if its
// current status is one we expect and the caller owns it". The status check
// and the write happen inside a single Firestore transaction, so of two
// callers racing on the same record at most one commits; the loser re-reads a
// status outside its expected set and gets InvalidTransition.
//
// The ledger knows nothing about quotations, profiles or reviews. Each typed
// repository instantiates it with its own collection and decodes the record
// for the owner check itself.
type statusLedger struct {
	client     *firestore.Client
	collection string
	label      string
}

func newStatusLedger(client *firestore.Client, collection, label string) statusLedger {
	return statusLedger{client: client, collection: collection, label: label}
}

// transition applies next plus fields when the record exists, passes
// ownerCheck and currently holds one of the expected statuses. ownerCheck
// receives the pre-update snapshot and returns the error to surface (nil to
// allow); it runs before the status check so a foreign caller learns nothing
// about the record's state.
func (l *statusLedger) transition(ctx context.Context, id string, expected []string, next string, fields map[string]interface{}, ownerCheck func(doc *firestore.DocumentSnapshot) error) error {
	docRef := l.client.Collection(l.collection).Doc(id)

	err := l.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound(l.label, err)
			}
			return errors.Internal(fmt.Sprintf("Failed to read %s", l.label), err)
		}

		if ownerCheck != nil {
			if err := ownerCheck(doc); err != nil {
				return err
			}
		}

		raw, err := doc.DataAt("status")
		if err != nil {
			return errors.Internal(fmt.Sprintf("Failed to read %s status", l.label), err)
		}
		current, _ := raw.(string)

		matched := false
		for _, want := range expected {
			if current == want {
				matched = true
				break
			}
		}
		if !matched {
			return errors.InvalidTransition(
				fmt.Sprintf("%s cannot move from %q to %q", l.label, current, next), nil)
		}

		updates := []firestore.Update{
			{Path: "status", Value: next},
			{Path: "updatedAt", Value: time.Now()},
		}
		for path, value := range fields {
			updates = append(updates, firestore.Update{Path: path, Value: value})
		}

		return tx.Update(docRef, updates)
	})

	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return err
		}
		return errors.Internal(fmt.Sprintf("Failed to update %s", l.label), err)
	}

	return nil
}

// force is the privileged path for admin decisions: it sets the status
// unconditionally (the record must still exist). It deliberately does not
// reuse transition so that admin authority never widens the normal state
// machine; every call is audit-logged.
func (l *statusLedger) force(ctx context.Context, actorID, id, next string, fields map[string]interface{}) error {
	docRef := l.client.Collection(l.collection).Doc(id)

	err := l.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound(l.label, err)
			}
			return errors.Internal(fmt.Sprintf("Failed to read %s", l.label), err)
		}

		updates := []firestore.Update{
			{Path: "status", Value: next},
			{Path: "updatedAt", Value: time.Now()},
		}
		for path, value := range fields {
			updates = append(updates, firestore.Update{Path: path, Value: value})
		}

		return tx.Update(docRef, updates)
	})

	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return err
		}
		return errors.Internal(fmt.Sprintf("Failed to update %s", l.label), err)
	}

	logger.Audit(actorID, l.collection, id, next)
	return nil
}
