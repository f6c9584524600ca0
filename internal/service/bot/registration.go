package bot

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/lfmorais/nara/backend/internal/model/bot"
	"github.com/lfmorais/nara/backend/internal/service/directory"
)

// handleRegistration dispatches one message into the TAG registration
// flow, creating the draft on first entry. Steps return the mutated
// draft plus whether it should stay registered; finalization and
// cancellation drop it.
func (e *Engine) handleRegistration(ctx context.Context, msg bot.InboundMessage) {
	e.storeSession(msg, bot.StatusTag)

	draft, ok := e.drafts.FindByIdentity(msg.Identity)
	if !ok {
		draft = e.freshDraft(msg.Identity)
	}

	draft, keep := e.advance(ctx, draft, msg)
	if keep {
		e.drafts.Upsert(draft)
	} else {
		e.drafts.Remove(msg.Identity)
	}
}

func (e *Engine) advance(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) (bot.TagDraft, bool) {
	switch draft.Step {
	case bot.StepStart:
		return e.beginRegistration(ctx, draft), true
	case bot.StepCPF:
		return e.collectCPF(ctx, draft, msg), true
	case bot.StepConfirmCPF:
		return e.confirmCPF(ctx, draft, msg), true
	case bot.StepTagNumber:
		return e.collectTagNumber(ctx, draft, msg), true
	case bot.StepPlate:
		return e.collectPlate(ctx, draft, msg), true
	case bot.StepBrand:
		return e.collectBrand(ctx, draft, msg), true
	case bot.StepModel:
		return e.collectModel(ctx, draft, msg), true
	case bot.StepColor:
		return e.collectColor(ctx, draft, msg), true
	case bot.StepConfirm:
		return e.confirmRegistration(ctx, draft, msg)
	case bot.StepTagPhoto:
		return e.collectTagPhoto(ctx, draft, msg), true
	case bot.StepVehiclePhoto:
		return e.collectVehiclePhoto(ctx, draft, msg)
	default:
		return e.recoverDraft(ctx, draft), true
	}
}

func (e *Engine) freshDraft(identity string) bot.TagDraft {
	return bot.TagDraft{
		Identity:  identity,
		Step:      bot.StepStart,
		CreatedAt: e.now().UnixMilli(),
	}
}

func (e *Engine) beginRegistration(ctx context.Context, draft bot.TagDraft) bot.TagDraft {
	e.send(ctx, draft.Identity, msgAskCPF)
	draft.Step = bot.StepCPF
	return draft
}

func (e *Engine) collectCPF(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	cpf := sanitizeCPF(msg.Body)
	if !validCPF(cpf) {
		e.send(ctx, draft.Identity, msgCPFInvalid)
		return draft
	}

	person, err := e.directory.FindPersonByCPF(ctx, cpf)
	if err != nil {
		if !errors.Is(err, directory.ErrPersonNotFound) {
			log.Printf("[bot] cpf lookup for %s failed: %v", draft.Identity, err)
		}
		e.send(ctx, draft.Identity, msgCPFNotFound)
		return draft
	}
	if !person.Known() {
		e.send(ctx, draft.Identity, msgCPFNotFound)
		return draft
	}

	draft.CPF = cpf
	e.send(ctx, draft.Identity, msgConfirmPerson(person.Name))
	draft.Step = bot.StepConfirmCPF
	return draft
}

func (e *Engine) confirmCPF(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	if strings.TrimSpace(msg.Body) == "1" {
		e.send(ctx, draft.Identity, msgAskTagNumber)
		draft.Step = bot.StepTagNumber
		return draft
	}
	// Rejection sends the flow back to the CPF question; the stored CPF
	// is cleared so re-entry validates and overwrites it.
	draft.CPF = ""
	e.send(ctx, draft.Identity, msgCPFRetry)
	draft.Step = bot.StepCPF
	return draft
}

func (e *Engine) collectTagNumber(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	number := strings.TrimSpace(msg.Body)
	if !validTagNumber(number) {
		e.send(ctx, draft.Identity, msgTagNumberInvalid)
		return draft
	}
	draft.TagNumber = number
	e.send(ctx, draft.Identity, msgAskPlate)
	draft.Step = bot.StepPlate
	return draft
}

func (e *Engine) collectPlate(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	plate, ok := normalizePlate(msg.Body)
	if !ok {
		e.send(ctx, draft.Identity, msgPlateInvalid)
		return draft
	}
	draft.Vehicle.Plate = plate
	e.send(ctx, draft.Identity, msgBrandList(e.catalog.BrandNames()))
	draft.Step = bot.StepBrand
	return draft
}

func (e *Engine) collectBrand(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	ordinal, _ := parseOrdinal(msg.Body)
	brand, ok := e.catalog.BrandAt(ordinal)
	if !ok {
		e.send(ctx, draft.Identity, msgBrandInvalid)
		return draft
	}
	draft.Vehicle.Brand = brand
	e.send(ctx, draft.Identity, msgModelList(e.catalog.Models(brand)))
	draft.Step = bot.StepModel
	return draft
}

func (e *Engine) collectModel(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	ordinal, _ := parseOrdinal(msg.Body)
	model, ok := e.catalog.ModelAt(draft.Vehicle.Brand, ordinal)
	if !ok {
		e.send(ctx, draft.Identity, msgModelInvalid)
		return draft
	}
	draft.Vehicle.Model = model
	e.send(ctx, draft.Identity, msgColorList(e.catalog.Colors()))
	draft.Step = bot.StepColor
	return draft
}

func (e *Engine) collectColor(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	ordinal, _ := parseOrdinal(msg.Body)
	color, ok := e.catalog.ColorAt(ordinal)
	if !ok {
		e.send(ctx, draft.Identity, msgColorInvalid)
		return draft
	}
	draft.Vehicle.Color = color
	e.send(ctx, draft.Identity, msgSummary(draft))
	draft.Step = bot.StepConfirm
	return draft
}

func (e *Engine) confirmRegistration(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) (bot.TagDraft, bool) {
	if !strings.EqualFold(strings.TrimSpace(msg.Body), "sim") {
		e.send(ctx, draft.Identity, msgStartOver)
		return e.beginRegistration(ctx, e.freshDraft(draft.Identity)), true
	}

	duplicate, err := e.directory.IsTagOrPlateDuplicate(ctx, draft.TagNumber, draft.Vehicle.Plate)
	if err != nil {
		log.Printf("[bot] duplicate check for %s failed: %v", draft.Identity, err)
		e.send(ctx, draft.Identity, msgFailure)
		return draft, true
	}
	if duplicate {
		// The whole draft is thrown away: the user re-enters everything
		// after fixing the data with the administration.
		e.send(ctx, draft.Identity, msgDuplicate)
		return e.beginRegistration(ctx, e.freshDraft(draft.Identity)), true
	}

	e.send(ctx, draft.Identity, msgAskTagPhoto)
	draft.Step = bot.StepTagPhoto
	return draft, true
}

func (e *Engine) collectTagPhoto(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) bot.TagDraft {
	if msg.Kind != bot.KindImage || len(msg.Media) == 0 {
		e.send(ctx, draft.Identity, msgTagPhotoMissing)
		return draft
	}
	photo, err := e.images.Normalize(msg.Media)
	if err != nil {
		log.Printf("[bot] tag photo from %s rejected: %v", draft.Identity, err)
		e.send(ctx, draft.Identity, msgTagPhotoFailed)
		return draft
	}
	draft.TagPhoto = photo
	e.send(ctx, draft.Identity, msgAskVehiclePhoto)
	draft.Step = bot.StepVehiclePhoto
	return draft
}

func (e *Engine) collectVehiclePhoto(ctx context.Context, draft bot.TagDraft, msg bot.InboundMessage) (bot.TagDraft, bool) {
	if msg.Kind != bot.KindImage || len(msg.Media) == 0 {
		e.send(ctx, draft.Identity, msgVehiclePhotoMissing)
		return draft, true
	}
	photo, err := e.images.Normalize(msg.Media)
	if err != nil {
		log.Printf("[bot] vehicle photo from %s rejected: %v", draft.Identity, err)
		e.send(ctx, draft.Identity, msgVehiclePhotoFailed)
		return draft, true
	}
	draft.VehiclePhoto = photo
	draft.Step = bot.StepFinalizing
	return e.finalize(ctx, draft)
}

// finalize persists the completed draft. Success or failure, the
// conversation ends and the draft is dropped; persistence is never
// retried automatically.
func (e *Engine) finalize(ctx context.Context, draft bot.TagDraft) (bot.TagDraft, bool) {
	err := e.directory.GrantVehicleAccess(ctx, directory.GrantRequest{
		CPF:          draft.CPF,
		TagNumber:    draft.TagNumber,
		Plate:        draft.Vehicle.Plate,
		Brand:        draft.Vehicle.Brand,
		Model:        draft.Vehicle.Model,
		Color:        draft.Vehicle.Color,
		TagPhoto:     draft.TagPhoto,
		VehiclePhoto: draft.VehiclePhoto,
	})
	if err != nil {
		log.Printf("[bot] grant access for %s failed: %v", draft.Identity, err)
		e.send(ctx, draft.Identity, msgFailure)
	} else {
		e.send(ctx, draft.Identity, msgSuccess)
	}

	if session, ok := e.sessions.FindByIdentity(draft.Identity); ok {
		e.endConversation(ctx, session)
	}
	return draft, false
}

// recoverDraft handles a sub-status the dispatcher does not recognize.
// That only happens on a programming mistake, so it apologizes and
// re-asks the CPF without discarding already collected fields.
func (e *Engine) recoverDraft(ctx context.Context, draft bot.TagDraft) bot.TagDraft {
	e.send(ctx, draft.Identity, msgRecoverApology)
	e.send(ctx, draft.Identity, msgRecoverAskCPF)
	draft.Step = bot.StepCPF
	return draft
}

func parseOrdinal(body string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil {
		return 0, false
	}
	return n, true
}
