package profile

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Состояние экрана профиля",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) editOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-edit",
		Method:      http.MethodPost,
		Path:        "/api/v1/profile/edit",
		Summary:     "Перейти в режим редактирования",
		Description: "Черновик очищается, сохраненные значения в него не копируются.",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateDraftOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-draft-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/profile/draft",
		Summary:     "Изменить поля черновика",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-save",
		Method:      http.MethodPost,
		Path:        "/api/v1/profile/save",
		Summary:     "Сохранить черновик",
		Description: "Имя обязательно. При ошибке хранилища профиль остается в режиме редактирования.",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) cancelOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-cancel",
		Method:      http.MethodPost,
		Path:        "/api/v1/profile/cancel",
		Summary:     "Отменить редактирование",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) signOutOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-sign-out",
		Method:      http.MethodPost,
		Path:        "/api/v1/profile/sign-out",
		Summary:     "Выйти и удалить все данные профиля",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) avatarOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-avatar",
		Method:      http.MethodPut,
		Path:        "/api/v1/profile/avatar",
		Summary:     "Обновить фото профиля",
		Description: "Сохраняется сразу, независимо от режима редактирования.",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) socialOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-social-link",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile/social/{provider}",
		Summary:     "Ссылка на профиль в соцсети",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}
