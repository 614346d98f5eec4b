package server

import (
	"context"

	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
)

func (e *Endpoint) AddMediaToOffer(ctx context.Context, req *mediav1.AddMediaToOfferRequest) (_ *mediav1.AddMediaToOfferResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	offerID, err := parseUUID("offer_id", req.GetOfferId())
	if err != nil {
		return nil, err
	}
	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := e.db.AddMediaToOffer(dbCtx, media.ID, offerID, caller); err != nil {
		return nil, err
	}

	return &mediav1.AddMediaToOfferResponse{}, nil
}

func (e *Endpoint) RemoveMediaFromOffer(ctx context.Context, req *mediav1.RemoveMediaFromOfferRequest) (_ *mediav1.RemoveMediaFromOfferResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	offerID, err := parseUUID("offer_id", req.GetOfferId())
	if err != nil {
		return nil, err
	}
	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := e.db.RemoveMediaFromOffer(dbCtx, media.ID, offerID, caller); err != nil {
		return nil, err
	}

	return &mediav1.RemoveMediaFromOfferResponse{}, nil
}
