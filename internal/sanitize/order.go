package sanitize

import "github.com/Skyedown/pohoda-skalite/internal/domain"

// Order returns a copy of the order with every user-entered string
// sanitized. The stored original stays untouched; only the copy is handed to
// the notification path.
func Order(order domain.Order) domain.Order {
	sanitized := order

	sanitized.Delivery = domain.DeliveryDetails{
		FullName: Name(order.Delivery.FullName),
		Street:   Address(order.Delivery.Street),
		City:     Name(order.Delivery.City),
		Phone:    Phone(order.Delivery.Phone),
		Email:    Email(order.Delivery.Email),
		Notes:    Notes(order.Delivery.Notes),
	}

	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	for i := range items {
		items[i].Name = Name(items[i].Name)
		if items[i].RequiredOption != nil {
			opt := *items[i].RequiredOption
			opt.Name = Name(opt.Name)
			opt.SelectedValue = Name(opt.SelectedValue)
			items[i].RequiredOption = &opt
		}
	}
	sanitized.Items = items

	return sanitized
}
