// Package mongo connects to MongoDB with the official v2 driver and a BSON
// registry that stores business registration numbers.
//
// Clients created by New use brncodec.NewBSONRegistry, so brn.BRN fields are
// written as BSON strings holding the canonical ten digits and brn.NullBRN
// fields as a string or null. Decoding validates the stored value and reports
// brn.ErrMalformed or brn.ErrChecksumMismatch through the usual error chain.
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "registry")
//	if err != nil {
//	    return err
//	}
//
//	type company struct {
//	    BRN    brn.BRN     `bson:"_id"`
//	    Name   string      `bson:"name"`
//	    Parent brn.NullBRN `bson:"parent"`
//	}
//	_, err = db.Collection("companies").InsertOne(ctx, company{BRN: b, Name: name})
//
// New retries the initial connect and ping RetryAttempts times with
// RetryInterval between attempts and stops early when ctx is done. All
// connection failures wrap ErrFailedToConnectToMongo.
//
// Healthcheck returns a func(context.Context) error probe for readiness checks.
package mongo
