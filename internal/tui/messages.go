package tui

import (
	"github.com/LEEJEHEON/moneycheck/internal/controller"
	"github.com/LEEJEHEON/moneycheck/internal/model"
)

// initMsg kicks off the initial data load. Init only schedules it; the
// Begin calls must run inside Update so the token bump lands on the model
// the runtime actually keeps.
type initMsg struct{}

// Data loading messages. Each carries the request token of the fetch that
// produced it so the list controller can reject superseded responses, and
// the session epoch so responses landing after logout are discarded.
type transactionsLoadedMsg struct {
	err          error
	transactions []model.Transaction
	token        controller.RequestToken
	epoch        uint64
}

type categoriesLoadedMsg struct {
	err        error
	categories []model.Category
	token      controller.RequestToken
	epoch      uint64
}

type accountsLoadedMsg struct {
	err      error
	accounts []model.Account
	token    controller.RequestToken
	epoch    uint64
}

// Mutation result messages.
type saveDoneMsg struct {
	err   error
	view  controller.View
	epoch uint64
}

type deleteDoneMsg struct {
	err   error
	view  controller.View
	epoch uint64
}

type bulkDeleteDoneMsg struct {
	err     error
	deleted int
	epoch   uint64
}

// probeDoneMsg reports the server-management connectivity check.
type probeDoneMsg struct {
	err   error
	epoch uint64
}
