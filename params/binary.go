package params

// binaryPair lists the interaction parameters of a component pair with
// I < J. Pairs that are not listed use 1 for all four parameters.
type binaryPair struct {
	I, J       Component
	E, U, K, G float64
}

var binaryPairs = []binaryPair{
	{Methane, Nitrogen, 0.97164, 0.886106, 1.00363, 1},
	{Methane, CarbonDioxide, 0.960644, 0.963827, 0.995933, 0.807653},
	{Methane, Propane, 0.994635, 0.990877, 1.007619, 1},
	{Methane, Isobutane, 1.01953, 1, 1, 1},
	{Methane, NButane, 0.989844, 0.992291, 0.997596, 1},
	{Methane, Isopentane, 1.00235, 1, 1, 1},
	{Methane, NPentane, 0.999268, 1.00367, 1.002529, 1},
	{Methane, Hexane, 1.107274, 1.302576, 0.982962, 1},
	{Methane, Heptane, 0.88088, 1.191904, 0.983565, 1},
	{Methane, Octane, 0.880973, 1.205769, 0.982707, 1},
	{Methane, Nonane, 0.881067, 1.219634, 0.981849, 1},
	{Methane, Decane, 0.881161, 1.233498, 0.980991, 1},
	{Methane, Hydrogen, 1.17052, 1.15639, 1.02326, 1.95731},
	{Methane, CarbonMonoxide, 0.990126, 1, 1, 1},
	{Methane, Water, 0.708218, 1, 1, 1},
	{Methane, HydrogenSulfide, 0.931484, 0.736833, 1.00008, 1},
	{Nitrogen, CarbonDioxide, 1.02274, 0.835058, 0.982361, 0.982746},
	{Nitrogen, Ethane, 0.97012, 0.816431, 1.00796, 1},
	{Nitrogen, Propane, 0.945939, 0.915502, 1, 1},
	{Nitrogen, Isobutane, 0.946914, 1, 1, 1},
	{Nitrogen, NButane, 0.973384, 0.993556, 1, 1},
	{Nitrogen, Isopentane, 0.95934, 1, 1, 1},
	{Nitrogen, NPentane, 0.94552, 1, 1, 1},
	{Nitrogen, Hydrogen, 1.08632, 0.408838, 1.03227, 1},
	{Nitrogen, Oxygen, 1.021, 1, 1, 1},
	{Nitrogen, CarbonMonoxide, 1.00571, 1, 1, 1},
	{Nitrogen, Water, 0.746954, 1, 1, 1},
	{Nitrogen, HydrogenSulfide, 0.902271, 0.993476, 0.942596, 1},
	{CarbonDioxide, Ethane, 0.925053, 0.96987, 1.00851, 0.370296},
	{CarbonDioxide, Propane, 0.960237, 1, 1, 1},
	{CarbonDioxide, Isobutane, 0.906849, 1, 1, 1},
	{CarbonDioxide, NButane, 0.897362, 1, 1, 1},
	{CarbonDioxide, Isopentane, 0.726255, 1, 1, 1},
	{CarbonDioxide, NPentane, 0.859764, 1, 1, 1},
	{CarbonDioxide, Hexane, 0.855134, 1.066638, 0.910183, 1},
	{CarbonDioxide, Heptane, 0.831229, 1.077634, 0.895362, 1},
	{CarbonDioxide, Octane, 0.80831, 1.088178, 0.881152, 1},
	{CarbonDioxide, Nonane, 0.786323, 1.098291, 0.86752, 1},
	{CarbonDioxide, Decane, 0.765171, 1.108021, 0.854406, 1},
	{CarbonDioxide, Hydrogen, 1.28179, 1, 1, 1},
	{CarbonDioxide, CarbonMonoxide, 1.5, 0.9, 1, 1},
	{CarbonDioxide, Water, 0.849408, 1, 1, 1.67309},
	{CarbonDioxide, HydrogenSulfide, 0.955052, 1.04529, 1.00779, 1},
	{Ethane, Propane, 1.02256, 1.065173, 0.986893, 1},
	{Ethane, Isobutane, 1, 1.25, 1, 1},
	{Ethane, NButane, 1.01306, 1.25, 1, 1},
	{Ethane, Isopentane, 1, 1.25, 1, 1},
	{Ethane, NPentane, 1.00532, 1.25, 1, 1},
	{Ethane, Hydrogen, 1.16446, 1.61666, 1.02034, 1},
	{Ethane, Water, 0.693168, 1, 1, 1},
	{Ethane, HydrogenSulfide, 0.946871, 0.971926, 0.999969, 1},
	{Propane, NButane, 1.0049, 1, 1, 1},
	{Propane, Hydrogen, 1.034787, 1, 1, 1},
	{Isobutane, Hydrogen, 1.3, 1, 1, 1},
	{NButane, Hydrogen, 1.3, 1, 1, 1},
	{Hexane, HydrogenSulfide, 1.008692, 1.028973, 0.96813, 1},
	{Heptane, HydrogenSulfide, 1.010126, 1.033754, 0.96287, 1},
	{Octane, HydrogenSulfide, 1.011501, 1.038338, 0.957828, 1},
	{Nonane, HydrogenSulfide, 1.012821, 1.042735, 0.952441, 1},
	{Decane, HydrogenSulfide, 1.014089, 1.046966, 0.948338, 1},
	{Hydrogen, CarbonMonoxide, 1.1, 1, 1, 1},
}
