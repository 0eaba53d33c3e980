package viewmodel

import (
	"context"
	"fmt"
	"time"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/geocode"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/session"
)

// RegisterViewModel backs the occurrence registration screen: disaster type,
// map point, address, description and media attachments.
type RegisterViewModel struct {
	screen

	client    *client.Client
	geocoder  *geocode.Client
	session   *session.Context
	notifier  Notifier
	navigator Navigator

	occurrenceType string
	latitude       float64
	longitude      float64
	hasPoint       bool
	address        string
	description    string
	files          []client.MediaFile
}

func NewRegister(c *client.Client, g *geocode.Client, sess *session.Context, n Notifier, nav Navigator) *RegisterViewModel {
	return &RegisterViewModel{
		client:         c,
		geocoder:       g,
		session:        sess,
		notifier:       n,
		navigator:      nav,
		occurrenceType: model.TypeKeys[0],
	}
}

func (vm *RegisterViewModel) SetType(typ string) {
	vm.apply(func() { vm.occurrenceType = typ })
}

func (vm *RegisterViewModel) SetDescription(description string) {
	vm.apply(func() { vm.description = description })
}

func (vm *RegisterViewModel) SetAddress(address string) {
	vm.apply(func() { vm.address = address })
}

// AttachFiles stages media to upload after the record is created.
func (vm *RegisterViewModel) AttachFiles(files []client.MediaFile) {
	vm.apply(func() { vm.files = files })
	vm.notifier.Success(fmt.Sprintf("%d arquivo(s) selecionado(s)", len(files)))
}

// Address returns the current address label.
func (vm *RegisterViewModel) Address() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.address
}

// Coordinates returns the selected map point, if any.
func (vm *RegisterViewModel) Coordinates() (lat, lon float64, ok bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.latitude, vm.longitude, vm.hasPoint
}

// SetCoordinates records a map point and reverse-geocodes it into the
// address field. A geocoder failure keeps the point and only surfaces a
// notification.
func (vm *RegisterViewModel) SetCoordinates(ctx context.Context, lat, lon float64) {
	vm.apply(func() {
		vm.latitude = lat
		vm.longitude = lon
		vm.hasPoint = true
	})

	address, err := vm.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		vm.notifier.Error("Erro ao buscar endereço")
		return
	}
	if vm.apply(func() { vm.address = address }) {
		vm.notifier.Success("Endereço encontrado!")
	}
}

// SearchAddress forward-geocodes the typed address into a map point.
func (vm *RegisterViewModel) SearchAddress(ctx context.Context) error {
	vm.mu.Lock()
	address := vm.address
	vm.mu.Unlock()
	if address == "" {
		return nil
	}

	lat, lon, err := vm.geocoder.Search(ctx, address)
	if err != nil {
		vm.notifier.Error("Endereço não encontrado")
		return err
	}

	if vm.apply(func() {
		vm.latitude = lat
		vm.longitude = lon
		vm.hasPoint = true
	}) {
		vm.notifier.Success("Endereço encontrado!")
	}
	return nil
}

// Submit creates the occurrence and then uploads the staged media. A record
// created but with a failed upload surfaces as a single generic failure even
// though the record persisted; the inconsistency window is not reconciled
// here.
func (vm *RegisterViewModel) Submit(ctx context.Context) error {
	vm.mu.Lock()
	if !vm.hasPoint {
		vm.mu.Unlock()
		vm.notifier.Error("Por favor, selecione um local no mapa")
		return fmt.Errorf("%w: no map point selected", apperr.ErrValidation)
	}
	now := time.Now()
	payload := model.NewOccurrence{
		Type:          vm.occurrenceType,
		Neighborhood:  vm.address,
		Description:   vm.description,
		CreatedAt:     now,
		LastUpdatedAt: now,
		UserID:        vm.session.UserID(),
		Latitude:      vm.latitude,
		Longitude:     vm.longitude,
	}
	files := vm.files
	vm.mu.Unlock()

	created, err := vm.client.CreateOccurrence(ctx, payload)
	if err != nil {
		vm.notifier.Error("Erro ao registrar ocorrência")
		return err
	}

	if len(files) > 0 {
		if err := vm.client.UploadMedia(ctx, created.ID, "image", files); err != nil {
			vm.notifier.Error("Erro ao registrar ocorrência")
			return err
		}
	}

	vm.notifier.Success("Ocorrência registrada com sucesso!")
	vm.navigator.NavigateTo(RouteOccurrences)
	return nil
}
