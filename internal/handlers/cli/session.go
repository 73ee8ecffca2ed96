package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"parceltrack/internal/entities"
	"parceltrack/internal/service/identity"
	"parceltrack/internal/service/tracking"
	"parceltrack/pkg/logger"
)

// Session интерактивная сессия одного вызывающего: тонкий диспетчер
// над сервисами, бизнес-логики не содержит. Меню открывается по роли
// аутентифицированного.
type Session struct {
	log      sessionLogger
	identity IdentityService
	tracking TrackingService
	in       *bufio.Scanner
	out      io.Writer
}

func New(log sessionLogger, identityService IdentityService, trackingService TrackingService, in io.Reader, out io.Writer) *Session {
	return &Session{
		log:      log,
		identity: identityService,
		tracking: trackingService,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

func (s *Session) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		s.printf("\n=== Учет доставок ===\n")
		s.printf("1. Вход\n")
		s.printf("2. Регистрация\n")
		s.printf("0. Выход\n")

		switch s.readLine("Выберите действие: ") {
		case "1":
			s.login(ctx)
		case "2":
			s.register(ctx)
		case "0", "":
			return nil
		default:
			s.printf("Неизвестное действие\n")
		}
	}
	return ctx.Err()
}

func (s *Session) login(ctx context.Context) {
	username := s.readLine("Логин: ")
	password := s.readLine("Пароль: ")

	caller, err := s.identity.Authenticate(ctx, username, password)
	if err != nil {
		s.printError(err)
		return
	}

	s.printf("Вы вошли как %s (id=%d)\n", caller.Role, caller.ID)
	s.menu(ctx, caller)
}

func (s *Session) register(ctx context.Context) {
	username := s.readLine("Логин: ")
	password := s.readLine("Пароль: ")

	role := entities.RoleUser
	if s.readLine("Зарегистрировать администратора? (да/нет): ") == "да" {
		role = entities.RoleAdministrator
	}

	caller, err := s.identity.Register(ctx, username, password, role)
	if err != nil {
		s.printError(err)
		return
	}

	s.printf("Учетная запись создана: %s (id=%d)\n", caller.Role, caller.ID)
	s.menu(ctx, caller)
}

func (s *Session) menu(ctx context.Context, caller *entities.Identity) {
	for ctx.Err() == nil {
		s.printf("\n--- Меню (%s) ---\n", caller.Role)
		s.printf("1. Поиск\n")
		s.printf("2. Список доставок\n")
		if caller.Role == entities.RoleUser {
			s.printf("3. Добавить посылку\n")
		}
		if caller.Role == entities.RoleAdministrator {
			s.printf("4. Изменить статус\n")
			s.printf("5. Удалить посылку\n")
			s.printf("6. Удалить пользователя\n")
			s.printf("7. Прикрепить уведомление\n")
		}
		s.printf("0. Выход из меню\n")

		choice := s.readLine("Выберите действие: ")
		switch {
		case choice == "1":
			s.search(ctx)
		case choice == "2":
			s.list(ctx)
		case choice == "3" && caller.Role == entities.RoleUser:
			s.addParcel(ctx, caller)
		case choice == "4" && caller.Role == entities.RoleAdministrator:
			s.updateStatus(ctx)
		case choice == "5" && caller.Role == entities.RoleAdministrator:
			s.deleteParcel(ctx)
		case choice == "6" && caller.Role == entities.RoleAdministrator:
			s.deleteUser(ctx)
		case choice == "7" && caller.Role == entities.RoleAdministrator:
			s.attachNotification(ctx)
		case choice == "0" || choice == "":
			return
		default:
			s.printf("Действие недоступно\n")
		}
	}
}

func (s *Session) search(ctx context.Context) {
	switch s.readLine("Искать по: 1 - id посылки, 2 - имени получателя: ") {
	case "1":
		id, ok := s.readInt64("Id посылки: ")
		if !ok {
			return
		}
		view, err := s.tracking.FindByParcelID(ctx, id)
		if err != nil {
			s.printError(err)
			return
		}
		s.printView(view)
	case "2":
		substring := s.readLine("Подстрока имени получателя: ")
		view, err := s.tracking.FindByRecipient(ctx, substring)
		if err != nil {
			s.printError(err)
			return
		}
		s.printView(view)
	default:
		s.printf("Неизвестное действие\n")
	}
}

func (s *Session) list(ctx context.Context) {
	views, err := s.tracking.ListShipments(ctx)
	if err != nil {
		s.printError(err)
		return
	}

	if len(views) == 0 {
		s.printf("Доставок нет\n")
		return
	}
	for i := range views {
		s.printView(&views[i])
	}
}

func (s *Session) addParcel(ctx context.Context, caller *entities.Identity) {
	parcelID, ok := s.readInt64("Id посылки: ")
	if !ok {
		return
	}
	weight, ok := s.readFloat64("Вес, кг: ")
	if !ok {
		return
	}
	description := s.readLine("Описание: ")
	parcelType := s.readLine("Тип посылки: ")
	recipient := s.readLine("Имя получателя: ")
	adminID, ok := s.readInt64("Id администратора-обработчика: ")
	if !ok {
		return
	}

	createEntity := entities.ShipmentCreate{
		Parcel: entities.Parcel{
			ID:          parcelID,
			WeightKg:    weight,
			Description: description,
			Type:        parcelType,
		},
		UserID:        caller.ID,
		AdminID:       adminID,
		RecipientName: recipient,
		Status:        "Создана",
	}

	if message := s.readLine("Сообщение уведомления (пусто - без уведомления): "); message != "" {
		createEntity.Notification = &message
	}

	if err := s.tracking.AddParcel(ctx, createEntity); err != nil {
		s.printError(err)
		return
	}
	s.printf("Посылка %d добавлена\n", parcelID)
}

func (s *Session) updateStatus(ctx context.Context) {
	parcelID, ok := s.readInt64("Id посылки: ")
	if !ok {
		return
	}
	status := s.readLine("Новый статус: ")

	if err := s.tracking.UpdateStatus(ctx, parcelID, status); err != nil {
		s.printError(err)
		return
	}
	s.printf("Статус посылки %d обновлен\n", parcelID)
}

func (s *Session) deleteParcel(ctx context.Context) {
	parcelID, ok := s.readInt64("Id посылки: ")
	if !ok {
		return
	}

	if err := s.tracking.DeleteParcel(ctx, parcelID); err != nil {
		s.printError(err)
		return
	}
	s.printf("Посылка %d удалена\n", parcelID)
}

// deleteUser подтверждение каскада собирается здесь, до вызова сервиса:
// решение за человеком, механизм за сервисом.
func (s *Session) deleteUser(ctx context.Context) {
	userID, ok := s.readInt64("Id пользователя: ")
	if !ok {
		return
	}

	count, err := s.tracking.HasDependents(ctx, userID)
	if err != nil {
		s.printError(err)
		return
	}

	if count > 0 {
		s.printf("У пользователя %d доставок: %d. Все они будут удалены.\n", userID, count)
		if s.readLine("Подтвердить удаление? (да/нет): ") != "да" {
			s.printf("Удаление отменено\n")
			return
		}
	}

	if err := s.tracking.DeleteUser(ctx, userID); err != nil {
		s.printError(err)
		return
	}
	s.printf("Пользователь %d удален\n", userID)
}

func (s *Session) attachNotification(ctx context.Context) {
	parcelID, ok := s.readInt64("Id посылки: ")
	if !ok {
		return
	}
	message := s.readLine("Сообщение: ")

	if err := s.tracking.AttachNotification(ctx, parcelID, message); err != nil {
		s.printError(err)
		return
	}
	s.printf("Уведомление прикреплено к посылке %d\n", parcelID)
}

func (s *Session) printView(view *entities.ShipmentView) {
	s.printf("Посылка %d: %.2f кг, %q, тип %q\n",
		view.Parcel.ID, view.Parcel.WeightKg, view.Parcel.Description, view.Parcel.Type)
	s.printf("  Отправитель: %s (id=%d), обработчик: %s (id=%d)\n",
		view.Sender, view.SenderID, view.Admin, view.AdminID)
	s.printf("  Получатель: %s, статус: %s, создана: %s\n",
		view.RecipientName, view.Status, view.CreatedAt.Format("2006-01-02 15:04:05"))
	if view.Notification != nil {
		s.printf("  Уведомление: %q от %s\n",
			view.Notification.Message, view.Notification.SentAt.Format("2006-01-02 15:04:05"))
	} else {
		s.printf("  Уведомление: нет\n")
	}
}

// printError человекочитаемые сообщения об ошибках с указанием причины;
// внутренние детали наружу не выходят.
func (s *Session) printError(err error) {
	switch {
	case errors.Is(err, identity.ErrIdentityNotFound):
		s.printf("Ошибка: неверный логин или пароль\n")
	case errors.Is(err, tracking.ErrParcelNotFound):
		s.printf("Ошибка: посылка не найдена\n")
	case errors.Is(err, tracking.ErrUserNotFound):
		s.printf("Ошибка: пользователь не найден\n")
	case errors.Is(err, tracking.ErrDuplicateParcel):
		s.printf("Ошибка: посылка с таким id уже существует\n")
	case errors.Is(err, tracking.ErrDuplicateNotification):
		s.printf("Ошибка: у доставки уже есть уведомление\n")
	case errors.Is(err, tracking.ErrUnknownReference):
		s.printf("Ошибка: указанный пользователь или администратор не существует\n")
	case errors.Is(err, identity.ErrInvalidUsername),
		errors.Is(err, identity.ErrInvalidPassword),
		errors.Is(err, identity.ErrInvalidRole),
		errors.Is(err, tracking.ErrInvalidParcelID),
		errors.Is(err, tracking.ErrInvalidWeight),
		errors.Is(err, tracking.ErrInvalidRecipient),
		errors.Is(err, tracking.ErrInvalidStatus),
		errors.Is(err, tracking.ErrInvalidUserID),
		errors.Is(err, tracking.ErrInvalidAdminID),
		errors.Is(err, tracking.ErrInvalidMessage),
		errors.Is(err, tracking.ErrInvalidSearch):
		s.printf("Ошибка: некорректные данные: %v\n", err)
	default:
		s.log.Error("session operation failed",
			logger.NewField("error", err),
		)
		s.printf("Внутренняя ошибка, операция не выполнена\n")
	}
}

func (s *Session) readLine(prompt string) string {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *Session) readInt64(prompt string) (int64, bool) {
	val, err := strconv.ParseInt(s.readLine(prompt), 10, 64)
	if err != nil {
		s.printf("Ожидалось целое число\n")
		return 0, false
	}
	return val, true
}

func (s *Session) readFloat64(prompt string) (float64, bool) {
	val, err := strconv.ParseFloat(s.readLine(prompt), 64)
	if err != nil {
		s.printf("Ожидалось число\n")
		return 0, false
	}
	return val, true
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
